// Package repl implements the interactive command loop around a session:
// choosing a strategy by number or name, multiplying, undoing and listing
// history.
//
//	r, err := repl.New(&cfg, repl.NewLineReader(os.Stdin), os.Stdout)
//	err = r.Run(ctx)
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tailored-agentic-units/arraymul/multiplier"
	"github.com/tailored-agentic-units/arraymul/observability"
	"github.com/tailored-agentic-units/arraymul/session"
	"github.com/tailored-agentic-units/arraymul/strategy"
)

// Prompts shown by readers that implement Prompter. Config.Prompt
// replaces PromptCommand.
const (
	PromptCommand    = "command: "
	PromptMultiplier = "multiplier k: "
	PromptSize       = "array size: "
)

// Option configures a REPL after config-driven initialization.
type Option func(*REPL)

// WithCatalog overrides the default strategy catalog.
func WithCatalog(c *strategy.Catalog) Option {
	return func(r *REPL) { r.catalog = c }
}

// WithObserver overrides the observer resolved from Config.Observer.
func WithObserver(o observability.Observer) Option {
	return func(r *REPL) {
		if o != nil {
			r.observer = o
		}
	}
}

// REPL reads commands from a LineReader and writes results to an io.Writer.
type REPL struct {
	cfg      Config
	session  *session.Session
	catalog  *strategy.Catalog
	observer observability.Observer
	in       LineReader
	out      io.Writer
}

// New creates a REPL from configuration. The session is created with the
// configured initial array; when none is configured, Run prompts for one.
func New(cfg *Config, in LineReader, out io.Writer, opts ...Option) (*REPL, error) {
	name := cfg.Observer
	if name == "" {
		name = defaultObserver
	}

	observer, err := observability.GetObserver(name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	r := &REPL{
		cfg:      *cfg,
		catalog:  strategy.Default(),
		observer: observer,
		in:       in,
		out:      out,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.cfg.Prompt == "" {
		r.cfg.Prompt = PromptCommand
	}

	if cfg.Metrics {
		metrics, err := observability.NewMetricsObserver(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics observer: %w", err)
		}
		r.observer = observability.NewMultiObserver(r.observer, metrics)
	}

	r.session = session.New(&r.cfg.Session, cfg.Array, multiplier.WithObserver(r.observer))
	return r, nil
}

// Session returns the session the REPL operates on.
func (r *REPL) Session() *session.Session {
	return r.session
}

// Run executes the command loop until exit, end of input, or context
// cancellation. Command errors are reported to the writer and the loop
// continues; input errors end the loop.
func (r *REPL) Run(ctx context.Context) error {
	if len(r.cfg.Array) == 0 {
		arr, err := r.readArray()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		r.session.Reset(arr)
	}

	r.emit(ctx, EventStart, observability.LevelInfo, map[string]any{
		"session": r.session.ID(),
		"length":  len(r.session.Array()),
	})
	r.printStatus()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := r.readLine(r.cfg.Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.emit(ctx, EventExit, observability.LevelInfo, map[string]any{"reason": "eof"})
				return nil
			}
			return err
		}

		done, err := r.Execute(ctx, line)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.emit(ctx, EventExit, observability.LevelInfo, map[string]any{"reason": "eof"})
				return nil
			}
			if errors.Is(err, ErrInput) {
				return err
			}
			r.emit(ctx, EventError, observability.LevelWarning, map[string]any{
				"line":  line,
				"error": err.Error(),
			})
			fmt.Fprintf(r.out, "error: %v\n", err)
			continue
		}
		if done {
			r.emit(ctx, EventExit, observability.LevelInfo, map[string]any{"reason": "command"})
			fmt.Fprintln(r.out, "bye")
			return nil
		}
	}
}

// Execute runs a single command line. Returns true when the command ends
// the loop.
func (r *REPL) Execute(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	r.emit(ctx, EventCommand, observability.LevelVerbose, map[string]any{
		"command": cmd,
		"args":    len(args),
	})

	switch cmd {
	case "exit", "quit":
		return true, nil
	case "help":
		r.printHelp()
	case "show":
		r.printStatus()
	case "undo":
		r.undo()
	case "history":
		if len(args) > 0 && args[0] == "json" {
			return false, r.printHistoryJSON()
		}
		r.printHistory()
	case "reset":
		arr, err := ParseArray(strings.Join(args, " "))
		if err != nil {
			return false, err
		}
		r.session.Reset(arr)
		r.printStatus()
	default:
		return false, r.multiply(cmd, args)
	}
	return false, nil
}

func (r *REPL) multiply(identifier string, args []string) error {
	s, err := r.catalog.Lookup(identifier)
	if err != nil {
		if _, numErr := strconv.Atoi(identifier); numErr == nil {
			return err
		}
		return fmt.Errorf("%w: %s", ErrUnknownCommand, identifier)
	}

	if len(args) > 1 {
		return fmt.Errorf("%w: unexpected %q", ErrInvalidMultiplier, strings.Join(args[1:], " "))
	}

	r.session.SetStrategy(s)
	fmt.Fprintf(r.out, "strategy: %s\n", s.Name())

	var text string
	if len(args) > 0 {
		text = args[0]
	} else {
		text, err = r.readLine(PromptMultiplier)
		if err != nil {
			return err
		}
	}

	k, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidMultiplier, text)
	}

	res, err := r.session.Multiply(k)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "sum before: %d -> sum after: %d\n", res.BeforeSum, res.AfterSum)
	r.printStatus()
	return nil
}

func (r *REPL) undo() {
	entry, ok := r.session.Undo()
	if !ok {
		fmt.Fprintln(r.out, "nothing to undo")
		return
	}
	fmt.Fprintf(r.out, "undone: %s with multiplier %d\n", entry.Strategy(), entry.Multiplier())
	r.printStatus()
}

func (r *REPL) readArray() ([]int, error) {
	text, err := r.readLine(PromptSize)
	if err != nil {
		return nil, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("%w: size %q", ErrInvalidArray, text)
	}
	if n <= 0 {
		return nil, ErrEmptyArray
	}

	arr := make([]int, n)
	for i := range arr {
		text, err := r.readLine(fmt.Sprintf("element %d: ", i+1))
		if err != nil {
			return nil, err
		}
		if arr[i], err = strconv.Atoi(strings.TrimSpace(text)); err != nil {
			return nil, fmt.Errorf("%w: element %d: %q", ErrInvalidArray, i+1, text)
		}
	}
	return arr, nil
}

func (r *REPL) readLine(prompt string) (string, error) {
	if p, ok := r.in.(Prompter); ok {
		p.SetPrompt(prompt)
	}

	line, err := r.in.Readline()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("%w: %w", ErrInput, err)
	}
	return line, nil
}

func (r *REPL) printStatus() {
	arr := r.session.Array()
	fmt.Fprintf(r.out, "array: %s\n", FormatArray(arr))
	fmt.Fprintf(r.out, "sum: %d\n", multiplier.Sum(arr))
	fmt.Fprintf(r.out, "history: %d\n", r.session.HistorySize())
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.out, "strategies:")
	for _, d := range r.catalog.List() {
		fmt.Fprintf(r.out, "  %d - %s (%s)\n", d.Kind, d.DisplayName, d.Name)
	}
	fmt.Fprintln(r.out, "commands:")
	fmt.Fprintln(r.out, "  <strategy> [k]   multiply the array by k")
	fmt.Fprintln(r.out, "  undo             revert the last multiply")
	fmt.Fprintln(r.out, "  history [json]   list recorded operations")
	fmt.Fprintln(r.out, "  show             print the array")
	fmt.Fprintln(r.out, "  reset <values>   replace the array and clear history")
	fmt.Fprintln(r.out, "  exit             quit")
}

func (r *REPL) printHistory() {
	entries := r.session.History()
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "history is empty")
		return
	}
	for i, e := range entries {
		fmt.Fprintf(r.out, "%d. %s (k=%d)\n", i+1, e.Strategy(), e.Multiplier())
	}
}

type historyRecord struct {
	ID         string    `json:"id"`
	Strategy   string    `json:"strategy"`
	Multiplier int       `json:"multiplier"`
	Snapshot   []int     `json:"snapshot"`
	Timestamp  time.Time `json:"timestamp"`
}

func (r *REPL) printHistoryJSON() error {
	entries := r.session.History()
	records := make([]historyRecord, len(entries))
	for i, e := range entries {
		records[i] = historyRecord{
			ID:         e.ID(),
			Strategy:   e.Strategy(),
			Multiplier: e.Multiplier(),
			Snapshot:   e.Snapshot(),
			Timestamp:  e.Timestamp(),
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	fmt.Fprintln(r.out, string(data))
	return nil
}

func (r *REPL) emit(ctx context.Context, typ observability.EventType, level observability.Level, data map[string]any) {
	r.observer.OnEvent(ctx, observability.NewEvent(typ, level, "repl.REPL", data))
}
