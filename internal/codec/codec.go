// Package codec converts passport records to their canonical text form and to
// URL-safe share tokens, and back.
//
// # Canonical text form
//
// A record is serialized as one JSON object with the categories in canonical
// order and tags always written as an array:
//
//	{
//	  "name": "Taro",
//	  "sensor":        {"tags": [0, 2], "memo": ""},
//	  "battery":       {"tags": [],     "memo": ""},
//	  "communication": {"tags": [],     "memo": "likes drawing"},
//	  "stamps": [{"date": "2026/10/19", "emoji": "🌟", "id": "0192…"}]
//	}
//
// # Tokens
//
// A token is the unpadded URL-safe base64 of the UTF-8 canonical text, so it
// never needs escaping inside a query string. Decode also accepts padded or
// standard-alphabet base64 and the older base64(percent-encoded JSON) tokens.
package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/ospassport/internal/common"
	"github.com/dmitrijs2005/ospassport/internal/models"
)

// DecodeError reports a token or canonical text that cannot be turned back
// into a record. It matches common.ErrDecode.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", common.ErrDecode, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", common.ErrDecode, e.Reason)
}

func (e *DecodeError) Unwrap() []error {
	if e.Err != nil {
		return []error{common.ErrDecode, e.Err}
	}
	return []error{common.ErrDecode}
}

// wireEntry and wireRecord are DTOs used exclusively for the canonical JSON.
// Pointers distinguish absent fields from empty ones.
type wireEntry struct {
	Tags []int  `json:"tags"`
	Memo string `json:"memo"`
}

type wireStamp struct {
	Date  string `json:"date"`
	Emoji string `json:"emoji"`
	ID    string `json:"id,omitempty"`
}

type wireRecord struct {
	Name          *string      `json:"name"`
	Sensor        *wireEntry   `json:"sensor"`
	Battery       *wireEntry   `json:"battery"`
	Communication *wireEntry   `json:"communication"`
	Stamps        *[]wireStamp `json:"stamps"`
}

func (w *wireRecord) entry(c models.CategoryID) **wireEntry {
	switch c {
	case models.CategorySensor:
		return &w.Sensor
	case models.CategoryBattery:
		return &w.Battery
	case models.CategoryCommunication:
		return &w.Communication
	}
	return nil
}

// Marshal returns the canonical text form of r. Text that is not valid UTF-8
// is rejected rather than replaced, so a marshalled record always decodes to
// itself.
func Marshal(r models.Record) ([]byte, error) {
	if err := checkText(r); err != nil {
		return nil, err
	}
	name := r.Name
	stamps := make([]wireStamp, 0, len(r.Stamps))
	for _, s := range r.Stamps {
		stamps = append(stamps, wireStamp{Date: s.Date, Emoji: s.Emoji, ID: s.ID})
	}
	w := wireRecord{Name: &name, Stamps: &stamps}
	for _, c := range models.Categories {
		e := r.Entry(c)
		*w.entry(c) = &wireEntry{Tags: models.NormalizeTags(e.Tags), Memo: e.Memo}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(w); err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func checkText(r models.Record) error {
	texts := []string{r.Name}
	for _, c := range models.Categories {
		texts = append(texts, r.Entry(c).Memo)
	}
	for _, s := range r.Stamps {
		texts = append(texts, s.Date, s.Emoji, s.ID)
	}
	for _, s := range texts {
		if !utf8.ValidString(s) {
			return fmt.Errorf("failed to marshal record: %w: %q", common.ErrInvalidText, s)
		}
	}
	return nil
}

// Unmarshal parses the canonical text form. Every failure is a *DecodeError
// and the returned record is then the zero value.
func Unmarshal(data []byte) (models.Record, error) {
	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return models.Record{}, &DecodeError{Reason: "invalid canonical text", Err: err}
	}
	if w.Name == nil {
		return models.Record{}, &DecodeError{Reason: `missing field "name"`}
	}
	if w.Stamps == nil {
		return models.Record{}, &DecodeError{Reason: `missing field "stamps"`}
	}

	r := models.NewRecord()
	r.Name = *w.Name
	for _, c := range models.Categories {
		e := *w.entry(c)
		if e == nil {
			return models.Record{}, &DecodeError{Reason: fmt.Sprintf("missing category %q", c)}
		}
		r.Categories[c] = models.CategoryEntry{Tags: models.NormalizeTags(e.Tags), Memo: e.Memo}
	}
	for _, s := range *w.Stamps {
		r.Stamps = append(r.Stamps, models.Stamp{Date: s.Date, Emoji: s.Emoji, ID: s.ID})
	}
	return r, nil
}

// Encode returns the share token of r.
func Encode(r models.Record) (string, error) {
	data, err := Marshal(r)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode turns a share token back into a record.
func Decode(token string) (models.Record, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.Record{}, &DecodeError{Reason: "empty token"}
	}

	data, err := decodeBase64(token)
	if err != nil {
		return models.Record{}, &DecodeError{Reason: "token is not base64", Err: err}
	}

	// Tokens of the first release carried percent-encoded JSON.
	if bytes.HasPrefix(data, []byte("%7B")) || bytes.HasPrefix(data, []byte("%7b")) {
		text, err := url.PathUnescape(string(data))
		if err != nil {
			return models.Record{}, &DecodeError{Reason: "invalid legacy token", Err: err}
		}
		data = []byte(text)
	}

	return Unmarshal(data)
}

// decodeBase64 accepts both alphabets, with or without padding. Query strings
// that went through form decoding may carry '+' as ' ', which is restored.
func decodeBase64(token string) ([]byte, error) {
	token = strings.ReplaceAll(token, " ", "+")
	token = strings.TrimRight(token, "=")
	if strings.ContainsAny(token, "+/") {
		return base64.RawStdEncoding.DecodeString(token)
	}
	return base64.RawURLEncoding.DecodeString(token)
}
