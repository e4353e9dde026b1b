// Package hseapi is a client for the HSE mobile-app backend. It obtains a
// bearer token through the ADFS authorization-code handshake and issues
// authenticated queries against the dump/search API.
package hseapi

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const defaultHTTPTimeout = 30 * time.Second

// Credentials identify one corporate account and the mobile-app client.
type Credentials struct {
	Username string // corporate email, e.g. iipetrov@edu.hse.ru
	Password string
	ClientID string // registered Android app id
}

func (c Credentials) validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return errors.New("[New] username is required")
	}
	if strings.TrimSpace(c.Password) == "" {
		return errors.New("[New] password is required")
	}
	if strings.TrimSpace(c.ClientID) == "" {
		return errors.New("[New] client id is required")
	}
	return nil
}

// Client holds the credentials, the current HTTP session, and the bearer
// token produced by the last successful handshake. A Client is not safe for
// concurrent use; embedders must serialize access themselves.
type Client struct {
	creds     Credentials
	endpoints Endpoints
	timeout   time.Duration
	debug     bool

	session *session // nil until Auth succeeds
	token   string
}

// New returns an unauthenticated Client. Call Auth before issuing queries.
func New(creds Credentials, opts ...Option) (*Client, error) {
	if err := creds.validate(); err != nil {
		return nil, err
	}

	c := &Client{
		creds:     creds,
		endpoints: DefaultEndpoints(),
		timeout:   defaultHTTPTimeout,
	}

	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, errors.Wrap(err, "[New] applying option")
		}
	}
	return c, nil
}

// Auth runs the authorization-code handshake and stores the resulting bearer
// token. Any previous session is discarded first, so Auth may be called again
// to establish a fresh session; a failed handshake leaves the Client
// unauthenticated.
func (c *Client) Auth(ctx context.Context) error {
	if c.session != nil {
		c.session.close()
		c.session = nil
		c.token = ""
	}

	sess, err := newSession(c.timeout, c.debug)
	if err != nil {
		return errors.Wrap(err, "[Auth] creating session")
	}

	token, err := c.handshake(ctx, sess)
	if err != nil {
		sess.close()
		return err
	}

	c.session = sess
	c.token = token
	log.Debug().Msg("auth success")
	return nil
}

// HasSession reports whether the Client holds an authenticated session.
func (c *Client) HasSession() bool {
	return c.session != nil && c.token != ""
}

// Token returns the bearer token from the last successful handshake, or the
// empty string before authentication.
func (c *Client) Token() string {
	return c.token
}

// session bundles the resty client with the raw http.Client it wraps. The
// cookie jar lives on the raw client and is shared by all handshake steps;
// redirect following is disabled so 302 responses come back as-is.
type session struct {
	resty *resty.Client
	http  *http.Client
}

func newSession(timeout time.Duration, debug bool) (*session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "cookiejar.New")
	}

	hc := &http.Client{
		Jar:     jar,
		Timeout: timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	if debug {
		hc.Transport = &debugTransport{base: http.DefaultTransport}
	}

	return &session{resty: resty.NewWithClient(hc), http: hc}, nil
}

func (s *session) close() {
	s.http.CloseIdleConnections()
}
