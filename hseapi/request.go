package hseapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// apiHeaders builds the fixed header set the backend expects on every
// authenticated call.
func (c *Client) apiHeaders() map[string]string {
	return map[string]string{
		"Accept-Encoding": "gzip",
		"Accept-Language": "ru-RU",
		"Authorization":   "Bearer " + c.token,
		"User-Agent":      userAgent,
	}
}

// getJSON performs one bearer-authenticated GET against baseURL, merging
// params into the query string, and decodes the JSON body into out. It fails
// with NotAuthenticatedErr before touching the network if Auth has not
// completed.
func (c *Client) getJSON(ctx context.Context, baseURL string, params url.Values, out any) error {
	if !c.HasSession() {
		return NotAuthenticatedErr
	}

	reqURL := CombineBaseURLWithParams(baseURL, params)
	log.Debug().Str("url", reqURL).Msg("querying API")

	resp, err := c.session.resty.R().
		SetContext(ctx).
		SetHeaders(c.apiHeaders()).
		Get(reqURL)
	if err != nil {
		return errors.Wrap(err, "[getJSON] GET")
	}
	if resp.StatusCode() != http.StatusOK {
		return &APIError{URL: baseURL, Status: resp.StatusCode()}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return errors.Wrap(err, "[getJSON] decoding body")
	}
	return nil
}
