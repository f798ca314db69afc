package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/ospassport/internal/config"
	"github.com/dmitrijs2005/ospassport/internal/dictation"
	"github.com/dmitrijs2005/ospassport/internal/i18n"
	"github.com/dmitrijs2005/ospassport/internal/logging"
	"github.com/dmitrijs2005/ospassport/internal/models"
	"github.com/dmitrijs2005/ospassport/internal/services"
)

// App owns the record being edited. Every mutation happens on the goroutine
// running the REPL, so the record needs no locking.
type App struct {
	config    *config.Config
	logger    logging.Logger
	store     services.RecordStore
	resolver  *services.Resolver
	dictation *dictation.Session
	out       io.Writer

	record models.Record
	lang   i18n.Lang
	view   services.View
	simple bool

	now      func() time.Time
	location *time.Location
	stampID  func() string
}

func NewApp(c *config.Config, logger logging.Logger, store services.RecordStore, session *dictation.Session, out io.Writer) *App {
	return &App{
		config:    c,
		logger:    logger,
		store:     store,
		resolver:  services.NewResolver(store, logger),
		dictation: session,
		out:       out,
		record:    models.NewRecord(),
		lang:      c.Language,
		view:      services.ViewAbout,
		now:       time.Now,
		location:  time.Local,
		stampID:   models.NewStampID,
	}
}

// Start resolves the initial record from link, which may be empty, and
// stored data. A link that cannot be read falls back to stored data with a
// notice.
func (a *App) Start(ctx context.Context, link string) {
	res := a.resolver.ResolveURL(ctx, link)
	a.adopt(res)
	a.logger.Info(ctx, "record resolved", "source", res.Source, "view", res.View)

	if strings.TrimSpace(link) != "" && res.Source != services.SourceShared {
		a.println(mutedStyle.Render(i18n.T(a.lang).OpenFailed))
	}
}

func (a *App) adopt(res services.Resolution) {
	a.record = res.Record
	a.view = res.View
}

func (a *App) Record() models.Record {
	return a.record
}

// Prompt shows the view and, while dictating, the targeted category.
func (a *App) Prompt() string {
	p := "passport [" + string(a.view) + "]"
	if a.dictation != nil {
		if c, ok := a.dictation.Active(); ok {
			p += " 🎤 " + string(c)
		}
	}
	return p + "> "
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// Close stops a running dictation.
func (a *App) Close() {
	if a.dictation != nil {
		a.dictation.Close()
	}
}
