// Package share builds passport share links and renders them as QR codes.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/ospassport/internal/codec"
	"github.com/dmitrijs2005/ospassport/internal/common"
	"github.com/dmitrijs2005/ospassport/internal/models"
)

// BuildURL returns base with the share token of r in its query. Other query
// parameters and any fragment of base are dropped.
func BuildURL(base string, r models.Record) (string, error) {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return "", fmt.Errorf("failed to parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("failed to parse base url: %q is not absolute", base)
	}

	token, err := codec.Encode(r)
	if err != nil {
		return "", err
	}

	u.RawQuery = url.Values{common.ShareParam: {token}}.Encode()
	u.Fragment = ""
	return u.String(), nil
}

// QueryFromInput turns pasted input into query parameters. A full link or a
// query string is parsed; anything else is taken as a bare token.
func QueryFromInput(raw string) url.Values {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return url.Values{}
	}

	if strings.Contains(raw, "?") || strings.Contains(raw, "://") {
		if u, err := url.Parse(raw); err == nil {
			return u.Query()
		}
	}
	if strings.HasPrefix(raw, common.ShareParam+"=") {
		if q, err := url.ParseQuery(raw); err == nil {
			return q
		}
	}
	return url.Values{common.ShareParam: {raw}}
}

// TokenFromInput returns the share token carried by raw, if any.
func TokenFromInput(raw string) (string, bool) {
	q := QueryFromInput(raw)
	if !q.Has(common.ShareParam) {
		return "", false
	}
	return q.Get(common.ShareParam), true
}
