package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/netherous/monkey/internal/config"
	"github.com/netherous/monkey/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	noColor bool
)

// errReported marks failures whose details were already written to stderr.
var errReported = errors.New("errors reported")

var colorError = lipgloss.Color("#EF4444")

var rootCmd = &cobra.Command{
	Use:   "monkey",
	Short: "Lexer, parser and shell for the monkey language",
	Long: `monkey tokenizes, parses and formats programs written in the monkey
scripting language.

Without a subcommand an interactive shell is started.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRepl,
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $MONKEY_CONFIG, ./monkey.toml or ~/.config/monkey/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	addReplFlags(rootCmd)
}

// loadConfig reads the configuration and applies the global flags.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if noColor {
		cfg.Shell.Color = "never"
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	return logging.New(cmd.ErrOrStderr(), cfg.Logging)
}

// readSource reads the file named by the first argument, or standard input
// when there is none or it is "-".
func readSource(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return src, nil
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return src, nil
}

// errorStyle detects the color profile of w itself, so piping one stream
// while the other is a terminal leaves no escape codes behind.
func errorStyle(w io.Writer) lipgloss.Style {
	return lipgloss.NewRenderer(w).NewStyle().Foreground(colorError)
}

func printError(w io.Writer, err error) {
	msg := "error: " + err.Error()
	if !noColor {
		msg = errorStyle(w).Render(msg)
	}
	fmt.Fprintln(w, msg)
}
