package main

import (
	"errors"
	"io"

	"github.com/ergochat/readline"
)

var completer = readline.NewPrefixCompleter(
	readline.PcItem("loop"),
	readline.PcItem("pointer"),
	readline.PcItem("transform"),
	readline.PcItem("range"),

	readline.PcItem("undo"),
	readline.PcItem("history",
		readline.PcItem("json"),
	),
	readline.PcItem("show"),
	readline.PcItem("reset"),
	readline.PcItem("help"),

	readline.PcItem("exit"),
	readline.PcItem("quit"),
)

// terminalReader adapts a readline instance to repl.LineReader and
// repl.Prompter.
type terminalReader struct {
	rl *readline.Instance
}

func newTerminalReader() (*terminalReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "> ",
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, err
	}
	return &terminalReader{rl: rl}, nil
}

func (t *terminalReader) Readline() (string, error) {
	line, err := t.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		// ^C on a partial line discards it; on an empty line it ends input.
		if len(line) != 0 {
			return "", nil
		}
		return "", io.EOF
	}
	return line, err
}

func (t *terminalReader) SetPrompt(prompt string) {
	t.rl.SetPrompt(prompt)
}

func (t *terminalReader) Close() error {
	if t.rl == nil {
		return nil
	}
	err := t.rl.Close()
	t.rl = nil
	return err
}
