package hseapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// handshake walks the ADFS redirect chain and returns a bearer token. The
// chain cannot be followed automatically: the final redirect target uses the
// ru.hse.pf:// scheme, which the transport would reject as an unknown scheme.
// Each step depends on the prior response; the session's cookie jar carries
// the ADFS cookies from step 1 into step 2.
func (c *Client) handshake(ctx context.Context, sess *session) (string, error) {
	logger := log.With().Str("handshake_id", uuid.New().String()).Logger()

	// 1. Authorize POST. A 302 means the credentials were accepted; anything
	// else is terminal, typically wrong credentials or client id.
	authorizeURL := CombineBaseURLWithParams(c.endpoints.Authorize, url.Values{
		"client_id":     {c.creds.ClientID},
		"redirect_uri":  {c.endpoints.RedirectURI},
		"response_type": {"code"},
	})
	resp, err := sess.resty.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"UserName":   c.creds.Username,
			"Password":   c.creds.Password,
			"AuthMethod": "FormsAuthentication",
		}).
		Post(authorizeURL)
	if err != nil {
		return "", errors.Wrap(err, "[handshake] authorize POST")
	}
	if resp.StatusCode() != http.StatusFound {
		return "", &AuthError{Step: StepAuthorizePost, Expected: http.StatusFound, Status: resp.StatusCode()}
	}
	location := resp.Header().Get("Location")
	if location == "" {
		return "", errors.Wrap(MissingLocationErr, string(StepAuthorizePost))
	}
	logger.Debug().Msg("authorize POST accepted")

	// 2. Authorize GET. ADFS answers with another 302 whose Location is the
	// app's redirect_uri carrying the authorization code.
	resp, err = sess.resty.R().SetContext(ctx).Get(location)
	if err != nil {
		return "", errors.Wrap(err, "[handshake] authorize GET")
	}
	if resp.StatusCode() != http.StatusFound {
		return "", &AuthError{Step: StepAuthorizeGet, Expected: http.StatusFound, Status: resp.StatusCode()}
	}
	location = resp.Header().Get("Location")
	if location == "" {
		return "", errors.Wrap(MissingLocationErr, string(StepAuthorizeGet))
	}
	redirect, err := url.Parse(location)
	if err != nil {
		return "", errors.Wrap(err, "[handshake] parsing redirect location")
	}
	code := redirect.Query().Get("code")
	if code == "" {
		return "", errors.Wrap(MissingAuthCodeErr, string(StepAuthorizeGet))
	}
	logger.Debug().Msg("authorization code received")

	// 3. Token POST. The exchange goes through the same session so the
	// cookies set by ADFS stay attached.
	conf := &oauth2.Config{
		ClientID:    c.creds.ClientID,
		RedirectURL: c.endpoints.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.endpoints.Authorize,
			TokenURL:  c.endpoints.Token,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	tokenCtx := context.WithValue(ctx, oauth2.HTTPClient, sess.http)
	tok, err := conf.Exchange(tokenCtx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return "", &AuthError{Step: StepTokenPost, Expected: http.StatusOK, Status: retrieveErr.Response.StatusCode}
		}
		return "", errors.Wrap(err, "[handshake] token POST")
	}

	logger.Debug().Msg("bearer token issued")
	return tok.AccessToken, nil
}
