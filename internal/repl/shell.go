// Package repl implements the interactive monkey shell. Each line read is run
// through the lexer and, depending on the mode, printed back as tokens, as the
// parsed program or as formatted source.
package repl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/netherous/monkey/ast"
	"github.com/netherous/monkey/internal/config"
	"github.com/netherous/monkey/internal/formatter"
	"github.com/netherous/monkey/internal/logging"
	"github.com/netherous/monkey/lexer"
	"github.com/netherous/monkey/parser"
	"github.com/netherous/monkey/token"
)

// words feeds tab completion on a terminal.
var words = []string{"fn", "let", "true", "false", "if", "else", "return", ":mode", ":quit", ":help"}

func complete(line string) []string {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasSuffix(line, " ") {
		return nil
	}
	last := fields[len(fields)-1]
	head := line[:len(line)-len(last)]

	var out []string
	for _, w := range words {
		if strings.HasPrefix(w, last) {
			out = append(out, head+w)
		}
	}
	return out
}

// Shell reads source lines and echoes what the front end makes of them.
type Shell struct {
	cfg    *config.Config
	in     io.Reader
	out    io.Writer
	logger *slog.Logger // as given to New
	log    *slog.Logger // logger of the current session
	styles styles

	mode  string
	lexer *lexer.Lexer

	reader lineReader
	// pending carries the result of a read that outlived the Run that
	// started it. The next Run receives that line instead of losing it.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// New returns a shell reading from in and writing to out. A nil cfg selects
// the defaults and a nil logger discards every record.
func New(cfg *config.Config, in io.Reader, out io.Writer, logger *slog.Logger) *Shell {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Shell{
		cfg:    cfg,
		in:     in,
		out:    out,
		logger: logger,
		log:    logger,
		styles: newStyles(out, cfg.Shell.Color),
		mode:   cfg.Shell.Mode,
		lexer:  lexer.New(nil),
	}
}

// Mode returns the current output mode.
func (s *Shell) Mode() string {
	return s.mode
}

// Run reads and evaluates lines until the input ends, :quit is entered or
// ctx is cancelled. All three are a clean shutdown and return nil; only a
// failure to read input is reported.
//
// The shell owns its input. Run may be called again after it returned, and a
// line that arrives after cancellation is handed to that next call.
func (s *Shell) Run(ctx context.Context) error {
	s.log, _ = logging.WithSession(s.logger)
	s.log.Info("shell started", "mode", s.mode)
	defer s.log.Info("shell stopped")

	if s.reader == nil {
		s.reader = newLineReader(s.in, s.cfg.Shell.HistoryFile, s.log)
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := s.readLine(ctx)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF), ctx.Err() != nil:
			return nil
		default:
			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(line) != "" {
			s.reader.AppendHistory(line)
		}
		if quit := s.Eval(line); quit {
			return nil
		}
	}
}

// readLine waits for the next line or for ctx to be done, whichever is first.
// At most one read is in flight per shell.
func (s *Shell) readLine(ctx context.Context) (string, error) {
	if s.pending == nil {
		r, prompt := s.reader, s.cfg.Shell.Prompt
		ch := make(chan readResult, 1)
		go func() {
			line, err := r.ReadLine(prompt)
			ch <- readResult{line, err}
		}()
		s.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-s.pending:
		s.pending = nil
		return res.line, res.err
	}
}

// Close saves the history and releases the terminal. It must not be called
// while Run is active.
func (s *Shell) Close() error {
	if s.reader == nil {
		return nil
	}
	err := s.reader.Close()
	s.reader = nil
	return err
}

// Eval handles a single input line and reports whether the shell should stop.
func (s *Shell) Eval(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, ":") {
		return s.meta(trimmed)
	}

	switch s.mode {
	case config.ModeTokens:
		s.printTokens(line)
	case config.ModeAST:
		if program := s.parse(line); program != nil {
			fmt.Fprintln(s.out, program.String())
		}
	case config.ModeFmt:
		if program := s.parse(line); program != nil {
			s.printFormatted(program)
		}
	}
	return false
}

func (s *Shell) meta(cmd string) bool {
	fields := strings.Fields(cmd)
	switch fields[0] {
	case ":q", ":quit", ":exit":
		return true
	case ":mode":
		if len(fields) == 1 {
			s.info("mode: " + s.mode)
			return false
		}
		if !slices.Contains(config.Modes, fields[1]) {
			s.error(fmt.Sprintf("unknown mode %q, want one of %s", fields[1], strings.Join(config.Modes, ", ")))
			return false
		}
		s.mode = fields[1]
		s.info("mode: " + s.mode)
	case ":help":
		s.info(":mode [tokens|ast|fmt]  show or switch the output mode")
		s.info(":quit                   leave the shell")
	default:
		s.error(fmt.Sprintf("unknown command %s (try :help)", fields[0]))
	}
	return false
}

func (s *Shell) printTokens(line string) {
	s.lexer.Reset([]byte(line))
	for tok := s.lexer.NextToken(); tok.Type != token.EOF; tok = s.lexer.NextToken() {
		fmt.Fprintln(s.out, tok.String())
	}
}

// parse returns the program for line, or nil after printing its diagnostics.
func (s *Shell) parse(line string) *ast.Program {
	s.lexer.Reset([]byte(line))
	p := parser.New(s.lexer)
	program := p.ParseProgram()

	nodes := 0
	ast.Walk(program, func(ast.Node) bool {
		nodes++
		return true
	})
	s.log.Debug("parsed line",
		"statements", len(program.Statements),
		"nodes", nodes,
		"errors", len(program.Errors))

	if len(program.Errors) > 0 {
		for _, msg := range program.Errors.Messages() {
			s.error(msg)
		}
		return nil
	}
	return program
}

func (s *Shell) printFormatted(program *ast.Program) {
	var buf bytes.Buffer
	if err := formatter.New(&buf, s.cfg.Format.Indent).Format(program); err != nil {
		s.error(err.Error())
		return
	}
	fmt.Fprintln(s.out, buf.String())
}

func (s *Shell) error(msg string) {
	fmt.Fprintln(s.out, s.styles.render(s.styles.err, msg))
}

func (s *Shell) info(msg string) {
	fmt.Fprintln(s.out, s.styles.render(s.styles.info, msg))
}
