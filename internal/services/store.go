package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ospassport/internal/codec"
	"github.com/dmitrijs2005/ospassport/internal/common"
	"github.com/dmitrijs2005/ospassport/internal/dbx"
	"github.com/dmitrijs2005/ospassport/internal/logging"
	"github.com/dmitrijs2005/ospassport/internal/models"
	"github.com/dmitrijs2005/ospassport/internal/repositories/metadata"
)

// savedAtSuffix names the companion key holding the time of the last save.
const savedAtSuffix = ".savedAt"

// StorageReadError reports a stored record that could not be read or parsed.
// It matches common.ErrStorageRead.
type StorageReadError struct {
	Key string
	Err error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("failed to load record[%s]: %v", e.Key, e.Err)
}

func (e *StorageReadError) Unwrap() []error {
	return []error{common.ErrStorageRead, e.Err}
}

// StorageWriteError reports a save that did not reach storage. The previously
// stored record, if any, is left in place. It matches common.ErrStorageWrite.
type StorageWriteError struct {
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("failed to save record[%s]: %v", e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() []error {
	return []error{common.ErrStorageWrite, e.Err}
}

// RecordStore keeps one record under one fixed, versioned key.
type RecordStore interface {
	Save(ctx context.Context, r models.Record) error
	// Load reports false when nothing usable is stored. Read and parse
	// failures are logged and reported the same way.
	Load(ctx context.Context) (models.Record, bool)
	Clear(ctx context.Context) error
	SavedAt(ctx context.Context) (time.Time, bool)
}

type recordStore struct {
	db     dbx.TxBeginner
	repo   metadata.Reader
	key    string
	logger logging.Logger
	now    func() time.Time
}

func NewRecordStore(db *sql.DB, logger logging.Logger) RecordStore {
	return &recordStore{
		db:     db,
		repo:   metadata.NewSQLiteRepository(db),
		key:    common.RecordKey,
		logger: logger,
		now:    time.Now,
	}
}

func (s *recordStore) Save(ctx context.Context, r models.Record) error {
	data, err := codec.Marshal(r)
	if err != nil {
		return &StorageWriteError{Key: s.key, Err: err}
	}
	stamp := []byte(s.now().UTC().Format(time.RFC3339))

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, s.key, data); err != nil {
			return err
		}
		return repo.Set(ctx, s.key+savedAtSuffix, stamp)
	})
	if err != nil {
		return &StorageWriteError{Key: s.key, Err: err}
	}

	s.logger.Debug(ctx, "record saved", "key", s.key, "bytes", len(data))
	return nil
}

func (s *recordStore) Load(ctx context.Context) (models.Record, bool) {
	data, err := s.repo.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn(ctx, "ignoring stored record", "error", &StorageReadError{Key: s.key, Err: err})
		return models.Record{}, false
	}
	if data == nil {
		return models.Record{}, false
	}

	r, err := codec.Unmarshal(data)
	if err != nil {
		s.logger.Warn(ctx, "ignoring stored record", "error", &StorageReadError{Key: s.key, Err: err})
		return models.Record{}, false
	}
	return r, true
}

func (s *recordStore) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, s.key); err != nil {
			return err
		}
		return repo.Delete(ctx, s.key+savedAtSuffix)
	})
	if err != nil {
		return &StorageWriteError{Key: s.key, Err: err}
	}
	return nil
}

func (s *recordStore) SavedAt(ctx context.Context) (time.Time, bool) {
	data, err := s.repo.Get(ctx, s.key+savedAtSuffix)
	if err != nil || data == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, string(data))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
