package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/dmitrijs2005/ospassport/internal/dictation"
	"github.com/dmitrijs2005/ospassport/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls    []string
	args     []string
	dictated []dictation.Result
	failSave bool

	// onDictated, if set, is signalled after each handled result
	onDictated chan struct{}
}

func (f *fakeExec) record(name, args string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) Prompt() string                              { return "p> " }
func (f *fakeExec) Help(context.Context) error                  { return f.record("help", "") }
func (f *fakeExec) ShowView(_ context.Context, a string) error  { return f.record("view", a) }
func (f *fakeExec) SetLang(_ context.Context, a string) error   { return f.record("lang", a) }
func (f *fakeExec) SetName(_ context.Context, a string) error   { return f.record("name", a) }
func (f *fakeExec) ToggleTag(_ context.Context, a string) error { return f.record("tag", a) }
func (f *fakeExec) SetMemo(_ context.Context, a string) error   { return f.record("memo", a) }
func (f *fakeExec) Dictate(_ context.Context, a string) error   { return f.record("dictate", a) }
func (f *fakeExec) Stamp(_ context.Context, a string) error     { return f.record("stamp", a) }
func (f *fakeExec) Share(context.Context) error                 { return f.record("share", "") }
func (f *fakeExec) Open(_ context.Context, a string) error      { return f.record("open", a) }
func (f *fakeExec) Reset(context.Context) error                 { return f.record("reset", "") }
func (f *fakeExec) ToggleSimple(context.Context) error          { return f.record("simple", "") }
func (f *fakeExec) Dictated(_ context.Context, r dictation.Result) {
	f.dictated = append(f.dictated, r)
	if f.onDictated != nil {
		f.onDictated <- struct{}{}
	}
}
func (f *fakeExec) Save(context.Context) error {
	_ = f.record("save", "")
	if f.failSave {
		return errors.New("save failed")
	}
	return nil
}

func feed(lines ...string) <-chan string {
	ch := make(chan string, len(lines))
	for _, l := range lines {
		ch <- l
	}
	close(ch)
	return ch
}

func noPrompt(string) {}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	err := runREPL(context.Background(), exec, feed(
		"help",
		"",
		"name  ギフ 太郎",
		"tag sensor 1",
		"memo c likes drawing",
		"stamp 2",
		"view passport",
		"input",
		"save",
		"share",
		"open https://x.example/?data=abc",
		"simple",
		"lang en",
		"dictate battery",
		"reset",
		"foobar",
		"exit",
		"save",
	), nil, &out, noPrompt)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"help", "name", "tag", "memo", "stamp", "view", "view", "save",
		"share", "open", "simple", "lang", "dictate", "reset",
	}, exec.calls)
	assert.Equal(t, " ギフ 太郎", exec.args[1])
	assert.Equal(t, "sensor 1", exec.args[2])
	assert.Equal(t, "c likes drawing", exec.args[3])
	assert.Equal(t, "input", exec.args[6])

	assert.Contains(t, out.String(), "Unknown command: foobar")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_PrintsHandlerErrors(t *testing.T) {
	exec := &fakeExec{failSave: true}
	var out bytes.Buffer

	require.NoError(t, runREPL(context.Background(), exec, feed("save"), nil, &out, noPrompt))
	assert.Contains(t, out.String(), "Error: save failed")
}

func TestRunREPL_DeliversDictationResults(t *testing.T) {
	exec := &fakeExec{onDictated: make(chan struct{}, 1)}
	results := make(chan dictation.Result, 1)
	results <- dictation.Result{Category: models.CategorySensor, Text: "まぶしい"}

	lines := make(chan string)
	done := make(chan error, 1)
	go func() {
		done <- runREPL(context.Background(), exec, lines, results, io.Discard, noPrompt)
	}()

	<-exec.onDictated
	close(lines)
	require.NoError(t, <-done)

	require.Len(t, exec.dictated, 1)
	assert.Equal(t, "まぶしい", exec.dictated[0].Text)
}

func TestRunREPL_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runREPL(ctx, &fakeExec{}, make(chan string), nil, io.Discard, noPrompt)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunREPL_UpdatesPrompt(t *testing.T) {
	var prompts []string
	err := runREPL(context.Background(), &fakeExec{}, feed("help"), nil, io.Discard, func(p string) {
		prompts = append(prompts, p)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"p> ", "p> "}, prompts)
}

type fakeReader struct {
	lines  []string
	errs   []error
	prompt string
	closed bool
}

func (f *fakeReader) Readline() (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	l, err := f.lines[0], f.errs[0]
	f.lines, f.errs = f.lines[1:], f.errs[1:]
	return l, err
}

func (f *fakeReader) SetPrompt(p string) { f.prompt = p }
func (f *fakeReader) Close() error       { f.closed = true; return nil }

func TestPumpLines(t *testing.T) {
	rl := &fakeReader{
		lines: []string{"help", "half typed", "save"},
		errs:  []error{nil, readline.ErrInterrupt, nil},
	}
	lines := make(chan string, 8)

	require.NoError(t, pumpLines(context.Background(), rl, lines))

	var got []string
	for l := range lines {
		got = append(got, l)
	}
	assert.Equal(t, []string{"help", "save"}, got)
}

func TestPumpLines_InterruptOnEmptyLineEnds(t *testing.T) {
	rl := &fakeReader{
		lines: []string{"", "never"},
		errs:  []error{readline.ErrInterrupt, nil},
	}
	lines := make(chan string, 8)

	require.NoError(t, pumpLines(context.Background(), rl, lines))
	_, ok := <-lines
	assert.False(t, ok)
}

func TestPumpLines_ReadErrorIsReturned(t *testing.T) {
	rl := &fakeReader{lines: []string{""}, errs: []error{errors.New("tty gone")}}

	err := pumpLines(context.Background(), rl, make(chan string, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestServe_ExitClosesReader(t *testing.T) {
	rl := &fakeReader{
		lines: []string{"help", "exit"},
		errs:  []error{nil, nil},
	}
	exec := &fakeExec{}
	var out bytes.Buffer

	require.NoError(t, serve(context.Background(), exec, rl, nil, &out))
	assert.True(t, rl.closed)
	assert.Equal(t, []string{"help"}, exec.calls)
	assert.True(t, strings.HasSuffix(out.String(), "Bye!\n"))
	assert.Equal(t, "p> ", rl.prompt)
}
