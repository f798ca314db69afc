package models

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/ospassport/internal/common"
	"github.com/google/uuid"
)

// newUUID is a test seam for uuid.NewV7.
var newUUID = uuid.NewV7

// NewStampID returns a creation-ordered unique identifier. It falls back to a
// random UUID if the time-ordered generator fails.
func NewStampID() string {
	id, err := newUUID()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ToggleTag flips the membership of index in the tag set of category c.
// Calling it twice with the same arguments restores the original set.
func ToggleTag(r Record, c CategoryID, index int) (Record, error) {
	if !IsCategory(c) {
		return r, fmt.Errorf("%w: %q", common.ErrUnknownCategory, c)
	}
	if _, ok := OptionKey(c, index); !ok {
		return r, fmt.Errorf("%w: %s[%d]", common.ErrTagOutOfRange, c, index)
	}

	out := r.Clone()
	e := out.Categories[c]
	if pos, found := slices.BinarySearch(e.Tags, index); found {
		e.Tags = slices.Delete(e.Tags, pos, pos+1)
	} else {
		e.Tags = slices.Insert(e.Tags, pos, index)
	}
	out.Categories[c] = e
	return out, nil
}

// ValidateText rejects text that would not survive serialization unchanged.
func ValidateText(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %q", common.ErrInvalidText, s)
	}
	return nil
}

// SetName replaces the profile name. Callers holding untrusted input check it
// with ValidateText first.
func SetName(r Record, name string) Record {
	out := r.Clone()
	out.Name = name
	return out
}

// SetMemo replaces the memo of category c.
func SetMemo(r Record, c CategoryID, memo string) (Record, error) {
	if !IsCategory(c) {
		return r, fmt.Errorf("%w: %q", common.ErrUnknownCategory, c)
	}
	if err := ValidateText(memo); err != nil {
		return r, err
	}
	out := r.Clone()
	e := out.Categories[c]
	e.Memo = memo
	out.Categories[c] = e
	return out, nil
}

// AppendMemo appends a dictated chunk to the memo of category c, separated by
// a single space.
func AppendMemo(r Record, c CategoryID, chunk string) (Record, error) {
	if !IsCategory(c) {
		return r, fmt.Errorf("%w: %q", common.ErrUnknownCategory, c)
	}
	if err := ValidateText(chunk); err != nil {
		return r, err
	}
	memo := strings.TrimSpace(r.Entry(c).Memo + " " + chunk)
	return SetMemo(r, c, memo)
}

// AddStamp prepends a stamp and keeps at most limit entries, dropping the
// oldest ones. A non-positive limit falls back to DefaultStampCap.
func AddStamp(r Record, emoji, date, id string, limit int) (Record, error) {
	if !IsStampEmoji(emoji) {
		return r, fmt.Errorf("%w: %q", common.ErrUnknownStamp, emoji)
	}
	if limit <= 0 {
		limit = DefaultStampCap
	}

	out := r.Clone()
	stamps := make([]Stamp, 0, min(len(out.Stamps)+1, limit))
	stamps = append(stamps, Stamp{Date: date, Emoji: emoji, ID: id})
	for _, s := range out.Stamps {
		if len(stamps) == limit {
			break
		}
		stamps = append(stamps, s)
	}
	out.Stamps = stamps
	return out, nil
}
