package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("HSE_USERNAME", "iipetrov@edu.hse.ru")
	t.Setenv("HSE_PASSWORD", "password123")
	t.Setenv("CLIENT_ID", "android-client-1")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "iipetrov@edu.hse.ru", c.Username)
	require.Equal(t, "password123", c.Password)
	require.Equal(t, "android-client-1", c.ClientID)
	require.Equal(t, 30*time.Second, c.HTTPTimeout)
	require.False(t, c.Debug)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HSE_USERNAME", "iipetrov@edu.hse.ru")
	t.Setenv("HSE_PASSWORD", "password123")
	t.Setenv("CLIENT_ID", "android-client-1")
	t.Setenv("HSE_HTTP_TIMEOUT", "5s")
	t.Setenv("HSE_DEBUG", "true")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, 5*time.Second, c.HTTPTimeout)
	require.True(t, c.Debug)
}

func TestLoadMissingCredentials(t *testing.T) {
	for _, key := range []string{"HSE_USERNAME", "HSE_PASSWORD", "CLIENT_ID"} {
		t.Setenv(key, "") // register restore
		require.NoError(t, os.Unsetenv(key))
	}

	_, err := Load()
	require.Error(t, err)
}
