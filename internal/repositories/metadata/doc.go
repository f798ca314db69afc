// Package metadata provides the local key/value store that backs record
// persistence.
//
// # Overview
//
// Repository maps string keys to opaque byte values. The SQLite
// implementation (SQLiteRepository) keeps them in the metadata table created
// by internal/migrations and works over a dbx.DBTX (either *sql.DB or *sql.Tx).
//
// # Contract
//
//   - Get returns (nil, nil) when the key is absent.
//   - Set is an upsert: a single statement, so a failed write leaves the
//     previous value in place.
//   - Delete is idempotent.
//
// Typical Usage
//
//	repo := metadata.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "k", []byte("v"))
//	v, _ := repo.Get(ctx, "k")
//	_ = repo.Delete(ctx, "k")
package metadata
