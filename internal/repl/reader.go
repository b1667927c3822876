package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/peterh/liner"
)

// lineReader yields one line of input per call. A finished input stream is
// reported as io.EOF.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

// newLineReader uses liner for line editing when in is an interactive
// terminal and a plain scanner for everything else (pipes, files, tests).
func newLineReader(in io.Reader, historyFile string, log *slog.Logger) lineReader {
	if in == os.Stdin && isTerminal(in) {
		r := newTTYReader(historyFile)
		if err := r.loadHistory(); err != nil {
			log.Warn("loading history", "file", historyFile, "error", err)
		}
		return r
	}
	return &scanReader{scanner: bufio.NewScanner(in)}
}

type scanReader struct {
	scanner *bufio.Scanner
}

// ReadLine ignores the prompt: non-interactive input gets no echo.
func (r *scanReader) ReadLine(string) (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *scanReader) AppendHistory(string) {}

func (r *scanReader) Close() error { return nil }

type ttyReader struct {
	state       *liner.State
	historyFile string
}

func newTTYReader(historyFile string) *ttyReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetCompleter(complete)
	return &ttyReader{state: state, historyFile: historyFile}
}

// loadHistory reads the history file. A file that does not exist yet is not
// an error.
func (r *ttyReader) loadHistory() error {
	if r.historyFile == "" {
		return nil
	}
	f, err := os.Open(r.historyFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = r.state.ReadHistory(f)
	return errors.Join(err, f.Close())
}

func (r *ttyReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	return line, err
}

func (r *ttyReader) AppendHistory(line string) {
	r.state.AppendHistory(line)
}

func (r *ttyReader) Close() error {
	return errors.Join(r.saveHistory(), r.state.Close())
}

func (r *ttyReader) saveHistory() error {
	if r.historyFile == "" {
		return nil
	}
	f, err := os.Create(r.historyFile)
	if err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	if _, err := r.state.WriteHistory(f); err != nil {
		f.Close()
		return fmt.Errorf("writing history: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}
