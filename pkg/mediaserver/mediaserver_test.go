package mediaserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingestd/catalogsync/pkg/pagination"
)

func TestGetLibraries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/library/sections", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("X-Plex-Token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"MediaContainer": {
				"Directory": [
					{"key": "1", "title": "Movies", "type": "movie", "Location": [{"path": "/mnt/media/movies"}]}
				]
			}
		}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "test-token")
	libs, err := client.GetLibraries(context.Background())
	require.NoError(t, err)
	require.Len(t, libs, 1)
	assert.Equal(t, "1", libs[0].Key)
	assert.Equal(t, "Movies", libs[0].Title)
	assert.Equal(t, []string{"/mnt/media/movies"}, libs[0].Locations)
}

func TestIterItems_FiltersOlderThanSinceEpoch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "updatedAt:desc", r.URL.Query().Get("sort"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"MediaContainer": {
				"totalSize": 2,
				"Metadata": [
					{"ratingKey": "1", "title": "New", "updatedAt": 2000},
					{"ratingKey": "2", "title": "Old", "updatedAt": 1000}
				]
			}
		}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "test-token")
	since := int64(1500)
	page, err := client.IterItems(context.Background(), "1", "movie", pagination.Params{Page: 1, PageSize: 50}, &since)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "New", page.Items[0].Title)
}

func TestGetItemDetails_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"MediaContainer": {"Metadata": []}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "test-token")
	_, err := client.GetItemDetails(context.Background(), "999")
	assert.Error(t, err)
}

func TestTestConnection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/status/sessions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"MediaContainer": {}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "test-token")
	assert.True(t, client.TestConnection(context.Background()))
}

func TestTestConnection_FailsOnAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New(srv.URL, "bad-token")
	assert.False(t, client.TestConnection(context.Background()))
}
