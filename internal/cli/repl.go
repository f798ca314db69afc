package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dmitrijs2005/ospassport/internal/dictation"
	"golang.org/x/sync/errgroup"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Prompt() string
	Help(ctx context.Context) error
	ShowView(ctx context.Context, args string) error
	SetLang(ctx context.Context, args string) error
	SetName(ctx context.Context, args string) error
	ToggleTag(ctx context.Context, args string) error
	SetMemo(ctx context.Context, args string) error
	Dictate(ctx context.Context, args string) error
	Dictated(ctx context.Context, res dictation.Result)
	Stamp(ctx context.Context, args string) error
	Save(ctx context.Context) error
	Share(ctx context.Context) error
	Open(ctx context.Context, args string) error
	Reset(ctx context.Context) error
	ToggleSimple(ctx context.Context) error
}

// lineReader is the part of *readline.Instance the input pump uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(p string)
	Close() error
}

// runREPL multiplexes typed lines and dictation results on the calling
// goroutine. It returns when lines is closed, the user types "exit" or
// "quit", or ctx is done. setPrompt receives the prompt after every event.
//
// Errors returned by command handlers are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, lines <-chan string, results <-chan dictation.Result, w io.Writer, setPrompt func(string)) error {
	for {
		setPrompt(a.Prompt())
		select {
		case <-ctx.Done():
			return ctx.Err()

		case res := <-results:
			a.Dictated(ctx, res)

		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := dispatch(ctx, a, line, w); quit {
				return nil
			}
		}
	}
}

// dispatch runs one command line and reports whether the user asked to quit.
func dispatch(ctx context.Context, a execIface, line string, w io.Writer) bool {
	cmd, args, _ := strings.Cut(strings.TrimSpace(line), " ")
	if cmd == "" {
		return false
	}

	var err error
	switch strings.ToLower(cmd) {
	case "help", "?":
		err = a.Help(ctx)
	case "view", "v":
		err = a.ShowView(ctx, args)
	case "about", "input", "passport":
		err = a.ShowView(ctx, cmd)
	case "lang":
		err = a.SetLang(ctx, args)
	case "name":
		err = a.SetName(ctx, args)
	case "tag", "t":
		err = a.ToggleTag(ctx, args)
	case "memo", "m":
		err = a.SetMemo(ctx, args)
	case "dictate", "mic":
		err = a.Dictate(ctx, args)
	case "stamp":
		err = a.Stamp(ctx, args)
	case "save":
		err = a.Save(ctx)
	case "share", "qr":
		err = a.Share(ctx)
	case "open":
		err = a.Open(ctx, args)
	case "reset":
		err = a.Reset(ctx)
	case "simple":
		err = a.ToggleSimple(ctx)
	case "exit", "quit":
		fmt.Fprintln(w, "Bye!")
		return true
	default:
		fmt.Fprintln(w, "Unknown command:", cmd)
	}

	if err != nil {
		fmt.Fprintln(w, "Error:", err)
	}
	return false
}

// pumpLines feeds lines typed at rl into lines until input ends or ctx is
// done. Ctrl-C on an empty line ends input as well.
func pumpLines(ctx context.Context, rl lineReader, lines chan<- string) error {
	defer close(lines)
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		select {
		case lines <- line:
		case <-ctx.Done():
			return nil
		}
	}
}

// serve runs the input pump and the REPL loop until either ends.
func serve(ctx context.Context, a execIface, rl lineReader, results <-chan dictation.Result, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return pumpLines(gctx, rl, lines)
	})
	g.Go(func() error {
		defer cancel()
		defer rl.Close()
		err := runREPL(gctx, a, lines, results, w, rl.SetPrompt)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	return g.Wait()
}
