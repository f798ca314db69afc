// Package dictation runs voice input sessions. Speech recognition itself is
// external: a Recognizer delivers finished transcripts, and a Session makes
// sure at most one of them is listening at a time.
package dictation

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dmitrijs2005/ospassport/internal/common"
)

// Recognizer produces one transcript per call.
type Recognizer interface {
	// Listen blocks until a transcript in the given locale is available or
	// ctx is done.
	Listen(ctx context.Context, locale string) (string, error)
}

// LineRecognizer takes transcripts line by line from a reader fed by an
// external speech-to-text tool. Lines written while nobody listens are held
// for the next session.
type LineRecognizer struct {
	src   io.ReadCloser
	lines chan string
	done  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
}

func NewLineRecognizer(src io.ReadCloser) *LineRecognizer {
	r := &LineRecognizer{
		src:   src,
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	r.wg.Add(1)
	go r.pump()
	return r
}

// NewFileRecognizer reads transcripts from the file or named pipe at path.
func NewFileRecognizer(path string) (*LineRecognizer, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictation source: %w", err)
	}

	flag := os.O_RDONLY
	if fi.Mode()&os.ModeNamedPipe != 0 {
		// read-write keeps the open from waiting for a writer and the pipe
		// from reporting EOF between writers
		flag = os.O_RDWR
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictation source: %w", err)
	}
	return NewLineRecognizer(f), nil
}

func (r *LineRecognizer) pump() {
	defer r.wg.Done()
	defer close(r.lines)

	sc := bufio.NewScanner(r.src)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		select {
		case r.lines <- line:
		case <-r.done:
			return
		}
	}
}

// Listen ignores locale: the external tool is configured for the language.
func (r *LineRecognizer) Listen(ctx context.Context, _ string) (string, error) {
	select {
	case line, ok := <-r.lines:
		if !ok {
			return "", fmt.Errorf("%w: source closed", common.ErrDictationUnavailable)
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close stops reading and releases the source.
func (r *LineRecognizer) Close() error {
	var err error
	r.once.Do(func() {
		close(r.done)
		err = r.src.Close()
		r.wg.Wait()
	})
	return err
}
