package hseapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewValidatesCredentials(t *testing.T) {
	_, err := New(Credentials{Password: "pw", ClientID: "id"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "username")

	_, err = New(Credentials{Username: "user", ClientID: "id"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "password")

	_, err = New(Credentials{Username: "user", Password: "pw"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "client id")

	c, err := New(testCreds())
	require.NoError(t, err)
	require.False(t, c.HasSession())
	require.Empty(t, c.Token())
}

func TestWithHTTPTimeout(t *testing.T) {
	c, err := New(testCreds(), WithHTTPTimeout(5*time.Second))
	require.NoError(t, err)
	require.Equal(t, 5*time.Second, c.timeout)

	_, err = New(testCreds(), WithHTTPTimeout(0))
	require.Error(t, err)
}

func TestWithEndpointsRequiresAllURLs(t *testing.T) {
	e := DefaultEndpoints()
	e.Token = ""
	_, err := New(testCreds(), WithEndpoints(e))
	require.Error(t, err)
}

func TestDebugLoggingRequestedFromEnv(t *testing.T) {
	t.Setenv("HSE_DEBUG", "true")
	c, err := New(testCreds())
	require.NoError(t, err)
	require.True(t, c.debug)
}
