package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/netherous/monkey/internal/config"
	"github.com/netherous/monkey/internal/repl"
	"github.com/spf13/cobra"
)

var replMode string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive shell",
	Long: `Start the interactive shell.

Every line entered is printed back as tokens, as the parsed program or as
formatted source, depending on the mode. Switch modes with ":mode <name>"
and leave with ":quit" or end of input.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	addReplFlags(replCmd)
	rootCmd.AddCommand(replCmd)
}

func addReplFlags(c *cobra.Command) {
	c.Flags().StringVar(&replMode, "mode", "", "output mode: tokens, ast or fmt (default from config)")
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if replMode != "" {
		if !slices.Contains(config.Modes, replMode) {
			return fmt.Errorf("unknown mode %q, want one of %v", replMode, config.Modes)
		}
		cfg.Shell.Mode = replMode
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sh := repl.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	runErr := sh.Run(ctx)
	if err := sh.Close(); err != nil {
		logger.Warn("closing shell", "error", err)
	}
	return runErr
}
