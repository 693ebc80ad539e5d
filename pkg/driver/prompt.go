package driver

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/ostnam/glox/pkg/logging"
)

// lineReader yields the lines typed at the prompt. ReadLine returns io.EOF
// at the end of input.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// RunPrompt runs every line read from in as its own program until the end
// of input. Errors in one line are reported and never end the session.
func (r *Runner) RunPrompt(in io.Reader) error {
	var lr lineReader
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		lr = newLinerReader(r.cfg.HistoryFile)
	} else {
		lr = &plainReader{in: bufio.NewReader(in), out: r.stdout}
	}
	defer lr.Close()

	for {
		line, err := lr.ReadLine(r.cfg.Prompt)
		if err == io.EOF {
			fmt.Fprintln(r.stdout)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		status := r.RunSource(line)
		logging.Debugf("line exited with status %d", status)
	}
}

// plainReader reads piped input. Lines have no length limit.
type plainReader struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *plainReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		// last line without a newline; EOF comes on the next call
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *plainReader) Close() error {
	return nil
}

// linerReader edits lines in the terminal and keeps their history in a file.
type linerReader struct {
	state       *liner.State
	historyFile string
}

func newLinerReader(historyFile string) *linerReader {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				logging.Warningf("reading history %s: %s", historyFile, err)
			}
			_ = f.Close()
		}
	}
	return &linerReader{state: ln, historyFile: historyFile}
}

func (l *linerReader) ReadLine(prompt string) (string, error) {
	for {
		line, err := l.state.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			// ctrl-C drops the current line only
			continue
		}
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			l.state.AppendHistory(line)
		}
		return line, nil
	}
}

func (l *linerReader) Close() error {
	if l.historyFile != "" {
		if f, err := os.Create(l.historyFile); err == nil {
			if _, err := l.state.WriteHistory(f); err != nil {
				logging.Warningf("writing history %s: %s", l.historyFile, err)
			}
			_ = f.Close()
		}
	}
	return l.state.Close()
}
