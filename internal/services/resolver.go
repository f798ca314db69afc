package services

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/ospassport/internal/codec"
	"github.com/dmitrijs2005/ospassport/internal/common"
	"github.com/dmitrijs2005/ospassport/internal/logging"
	"github.com/dmitrijs2005/ospassport/internal/models"
	"github.com/dmitrijs2005/ospassport/internal/share"
)

// View is the screen shown first after startup.
type View string

const (
	ViewAbout    View = "about"
	ViewInput    View = "input"
	ViewPassport View = "passport"
)

// Source tells where the initial record came from.
type Source string

const (
	SourceShared Source = "shared"
	SourceLocal  Source = "local"
	SourceEmpty  Source = "empty"
)

type Resolution struct {
	Record models.Record
	View   View
	Source Source
	// Pruned counts stale tag indices dropped from the record.
	Pruned int
}

// Resolver picks the initial record and view. A shared token wins over the
// stored record, which wins over an empty one. Decode failures are logged and
// never fatal.
type Resolver struct {
	store  RecordStore
	logger logging.Logger
}

func NewResolver(store RecordStore, logger logging.Logger) *Resolver {
	return &Resolver{store: store, logger: logger}
}

// Resolve runs the startup decision against the query parameters of the
// incoming location.
func (r *Resolver) Resolve(ctx context.Context, query url.Values) Resolution {
	if query.Has(common.ShareParam) {
		rec, err := codec.Decode(query.Get(common.ShareParam))
		if err == nil {
			res := Resolution{View: ViewPassport, Source: SourceShared}
			res.Record, res.Pruned = rec.Prune()
			if res.Pruned > 0 {
				r.logger.Warn(ctx, "dropped stale tags from shared record", "count", res.Pruned)
			}
			return res
		}
		r.logger.Warn(ctx, "ignoring shared record", "error", err)
	}

	res := Resolution{View: ViewAbout}
	if rec, ok := r.store.Load(ctx); ok {
		res.Record, res.Pruned = rec.Prune()
		res.Source = SourceLocal
		if res.Pruned > 0 {
			r.logger.Warn(ctx, "dropped stale tags from stored record", "count", res.Pruned)
		}
		return res
	}

	res.Record = models.NewRecord()
	res.Source = SourceEmpty
	return res
}

// ResolveURL accepts a full share link, a bare query string or a bare token.
func (r *Resolver) ResolveURL(ctx context.Context, raw string) Resolution {
	return r.Resolve(ctx, share.QueryFromInput(raw))
}
