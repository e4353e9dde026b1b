package hseapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

// DefaultSearchCount is the number of records returned when the caller does
// not ask for a specific count.
const DefaultSearchCount = 5

// Record is one backend entity. The dump API does not publish a schema, so
// records stay as raw key/value payloads.
type Record map[string]any

// Search runs a fuzzy search. An empty scope or ScopeAll searches every
// record type; any other scope must be one of the enumerated values, checked
// before any request is sent. A count <= 0 falls back to DefaultSearchCount.
func (c *Client) Search(ctx context.Context, query string, scope SearchScope, count int) ([]Record, error) {
	if count <= 0 {
		count = DefaultSearchCount
	}

	var typeParam string
	switch {
	case scope == "" || scope == ScopeAll:
		typeParam = allScopesParam()
	case !scope.Valid():
		return nil, errors.Wrapf(InvalidScopeErr, "must be one of %s, got %q", allScopesParam(), scope)
	default:
		typeParam = string(scope)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", typeParam)
	params.Set("count", strconv.Itoa(count))

	var records []Record
	if err := c.getJSON(ctx, c.endpoints.Search, params, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SearchByEmail looks up the single record registered under email.
func (c *Client) SearchByEmail(ctx context.Context, email string) (Record, error) {
	lookupURL := fmt.Sprintf(c.endpoints.EmailSearch, url.PathEscape(email))

	var record Record
	if err := c.getJSON(ctx, lookupURL, nil, &record); err != nil {
		return nil, err
	}
	return record, nil
}
