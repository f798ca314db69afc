package dictation

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/ospassport/internal/common"
	"github.com/dmitrijs2005/ospassport/internal/logging"
	"github.com/dmitrijs2005/ospassport/internal/models"
)

// Result is a transcript for the category that was targeted when the session
// started. Err is set when the recognizer failed.
type Result struct {
	Category models.CategoryID
	Text     string
	Err      error
}

type run struct {
	category models.CategoryID
	cancel   context.CancelFunc
	done     chan struct{}
}

// Session allows a single dictation at a time. A session ends when it is
// stopped or when its transcript has been delivered.
type Session struct {
	rec    Recognizer
	logger logging.Logger

	mu      sync.Mutex
	cur     *run
	results chan Result
	closed  chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// NewSession returns a session over rec. A nil rec means the capability is
// absent.
func NewSession(rec Recognizer, logger logging.Logger) *Session {
	return &Session{
		rec:     rec,
		logger:  logger,
		results: make(chan Result, 1),
		closed:  make(chan struct{}),
	}
}

// Available reports whether dictation can be offered at all.
func (s *Session) Available() bool {
	return s.rec != nil
}

// Results delivers transcripts of finished sessions.
func (s *Session) Results() <-chan Result {
	return s.results
}

// Active returns the targeted category of the running session.
func (s *Session) Active() (models.CategoryID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return "", false
	}
	return s.cur.category, true
}

// Start begins listening for category in locale.
func (s *Session) Start(ctx context.Context, category models.CategoryID, locale string) error {
	if !s.Available() {
		return common.ErrDictationUnavailable
	}
	if !models.IsCategory(category) {
		return common.ErrUnknownCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur != nil {
		return common.ErrDictationBusy
	}
	select {
	case <-s.closed:
		return common.ErrDictationUnavailable
	default:
	}

	ctx, cancel := context.WithCancel(ctx)
	r := &run{category: category, cancel: cancel, done: make(chan struct{})}
	s.cur = r

	s.wg.Add(1)
	go s.listen(ctx, r, locale)

	s.logger.Debug(ctx, "dictation started", "category", category, "locale", locale)
	return nil
}

func (s *Session) listen(ctx context.Context, r *run, locale string) {
	defer s.wg.Done()
	defer close(r.done)
	defer r.cancel()

	text, err := s.rec.Listen(ctx, locale)

	s.mu.Lock()
	stopped := s.cur != r
	if !stopped {
		s.cur = nil
	}
	s.mu.Unlock()

	if stopped {
		return
	}
	if err != nil {
		s.logger.Warn(ctx, "dictation failed", "category", r.category, "error", err)
	}

	select {
	case s.results <- Result{Category: r.category, Text: text, Err: err}:
	case <-s.closed:
	}
}

// Stop cancels the running session and waits for it to end. It reports
// whether a session was running.
func (s *Session) Stop() bool {
	s.mu.Lock()
	r := s.cur
	s.cur = nil
	s.mu.Unlock()

	if r == nil {
		return false
	}
	r.cancel()
	<-r.done
	return true
}

// Toggle stops a running session or starts a new one. It reports whether a
// session is running afterwards.
func (s *Session) Toggle(ctx context.Context, category models.CategoryID, locale string) (bool, error) {
	if s.Stop() {
		return false, nil
	}
	if err := s.Start(ctx, category, locale); err != nil {
		return false, err
	}
	return true, nil
}

// Close stops any session and waits for its goroutine.
func (s *Session) Close() {
	s.Stop()
	s.once.Do(func() { close(s.closed) })
	s.wg.Wait()
}
