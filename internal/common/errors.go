// Package common defines sentinel errors shared by the passport packages.
// Callers should use errors.Is to match these values; typed wrappers such as
// codec.DecodeError unwrap to them.
package common

import "errors"

var (
	// Share-token errors.
	ErrDecode = errors.New("malformed share token")

	// Local storage errors.
	ErrStorageRead  = errors.New("stored record unreadable")
	ErrStorageWrite = errors.New("stored record not written")

	// Record mutation errors.
	ErrUnknownCategory = errors.New("unknown category")
	ErrTagOutOfRange   = errors.New("tag index out of range")
	ErrUnknownStamp    = errors.New("unknown stamp")
	ErrInvalidText     = errors.New("text is not valid UTF-8")

	// Capability / settings errors.
	ErrDictationUnavailable = errors.New("dictation unavailable")
	ErrDictationBusy        = errors.New("dictation already running")
	ErrUnknownLanguage      = errors.New("unknown language")
)
