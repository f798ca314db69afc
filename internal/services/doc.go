// Package services holds the passport's persistence gateway (RecordStore) and
// the startup load resolver built on top of it.
package services
