package hseapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSearchNotAuthenticated(t *testing.T) {
	c, err := New(testCreds())
	require.NoError(t, err)

	_, err = c.Search(context.Background(), "Ivanov", ScopeStudent, 1)
	require.True(t, errors.Is(err, NotAuthenticatedErr))

	_, err = c.SearchByEmail(context.Background(), "ivanov@edu.hse.ru")
	require.True(t, errors.Is(err, NotAuthenticatedErr))
}

func TestSearchInvalidScope(t *testing.T) {
	b := newFakeBackend(t)
	c := newAuthedClient(t, b)

	_, err := c.Search(context.Background(), "Ivanov", "nonexistent_scope", 1)
	require.True(t, errors.Is(err, InvalidScopeErr))
	require.Contains(t, err.Error(), "nonexistent_scope")
	require.Equal(t, 0, b.searchGets)
}

func TestSearchAllScopes(t *testing.T) {
	b := newFakeBackend(t)
	c := newAuthedClient(t, b)

	_, err := c.Search(context.Background(), "Ivanov", "", 0)
	require.NoError(t, err)
	require.Equal(t, "student,staff,external_staff,auditorium,group,course,service", b.lastSearchQuery.Get("type"))
	require.Equal(t, "5", b.lastSearchQuery.Get("count"))

	_, err = c.Search(context.Background(), "Ivanov", ScopeAll, 3)
	require.NoError(t, err)
	require.Equal(t, "student,staff,external_staff,auditorium,group,course,service", b.lastSearchQuery.Get("type"))
	require.Equal(t, "3", b.lastSearchQuery.Get("count"))
}

func TestSearchUpstreamError(t *testing.T) {
	b := newFakeBackend(t)
	c := newAuthedClient(t, b)
	b.searchStatus = http.StatusInternalServerError

	records, err := c.Search(context.Background(), "Ivanov", ScopeStudent, 1)
	require.Nil(t, records)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestSearchMalformedBody(t *testing.T) {
	b := newFakeBackend(t)
	c := newAuthedClient(t, b)
	b.searchBody = `<html>maintenance</html>`

	_, err := c.Search(context.Background(), "Ivanov", ScopeStudent, 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decoding body")
}

func TestSearchByEmail(t *testing.T) {
	b := newFakeBackend(t)
	c := newAuthedClient(t, b)

	record, err := c.SearchByEmail(context.Background(), "ivanov@edu.hse.ru")
	require.NoError(t, err)
	require.Equal(t, "Ivanov Ivan", record["full_name"])
	require.Equal(t, "/v2/dump/email/ivanov@edu.hse.ru", b.lastEmailPath)
	require.Equal(t, "Bearer tok123", b.lastAuthHeader)
}
