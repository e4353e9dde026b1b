package hseapi

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	NotAuthenticatedErr = errors.New("no open session, call Auth first")
	InvalidScopeErr     = errors.New("invalid search scope")
	MissingLocationErr  = errors.New("redirect response has no Location header")
	MissingAuthCodeErr  = errors.New("redirect location has no code parameter")
)

// HandshakeStep names one of the three requests of the authorization walk.
type HandshakeStep string

const (
	StepAuthorizePost HandshakeStep = "authorize POST"
	StepAuthorizeGet  HandshakeStep = "authorize GET"
	StepTokenPost     HandshakeStep = "token POST"
)

// AuthError reports an unexpected status code at one of the handshake steps.
// The handshake stops at the first AuthError; no usable token is retained.
type AuthError struct {
	Step     HandshakeStep
	Expected int
	Status   int
}

func (e *AuthError) Error() string {
	msg := fmt.Sprintf("%s: expected status %d, got %d", e.Step, e.Expected, e.Status)
	if e.Step == StepAuthorizePost {
		msg += " (incorrect credentials or client id?)"
	}
	return msg
}

// APIError reports a non-200 response from a bearer-authenticated call.
type APIError struct {
	URL    string
	Status int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GET %s: expected status 200, got %d", e.URL, e.Status)
}
