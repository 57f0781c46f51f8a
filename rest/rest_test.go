package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvokka/her/errors"
	"github.com/kvokka/her/errors/class"
	"github.com/kvokka/her/models"
)

func testServer(t *testing.T, routes map[string]interface{}) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		payload, ok := routes[req.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}))
	t.Cleanup(server.Close)
	return server
}

func testRepository(t *testing.T, baseURL string, options ...Option) *Repository {
	t.Helper()

	repository, err := New(append([]Option{WithBaseURL(baseURL)}, options...)...)
	require.NoError(t, err)
	return repository
}

// TestNew tests the repository option handling.
func TestNew(t *testing.T) {
	t.Run("EmptyBaseURL", func(t *testing.T) {
		_, err := New()
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ResourceURLInvalid))
	})

	t.Run("RelativeBaseURL", func(t *testing.T) {
		_, err := New(WithBaseURL("/api/v1"))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ResourceURLInvalid))
	})

	t.Run("Valid", func(t *testing.T) {
		repository, err := New(
			WithBaseURL("https://api.example.com/v1"),
			WithTimeout(time.Second*5),
			WithHeader("Authorization", "Bearer token"),
		)
		require.NoError(t, err)
		assert.NotNil(t, repository)
	})
}

// TestFetchResource tests the single resource requests.
func TestFetchResource(t *testing.T) {
	ctx := context.Background()
	mm := models.NewModelMap(nil)
	user, err := mm.RegisterModel("User")
	require.NoError(t, err)

	t.Run("BareObject", func(t *testing.T) {
		server := testServer(t, map[string]interface{}{
			"/users/1": map[string]interface{}{"id": 1, "name": "Tobias"},
		})
		repository := testRepository(t, server.URL)

		record, err := repository.FetchResource(ctx, user, "/users/1", nil)
		require.NoError(t, err)
		require.NotNil(t, record)

		name, ok := record.Get("name")
		require.True(t, ok)
		assert.Equal(t, "Tobias", name)
		assert.Equal(t, json.Number("1"), record.PrimaryValue())
	})

	t.Run("SingularRoot", func(t *testing.T) {
		server := testServer(t, map[string]interface{}{
			"/users/1": map[string]interface{}{
				"user": map[string]interface{}{"id": 1, "name": "Tobias"},
			},
		})
		repository := testRepository(t, server.URL)

		record, err := repository.FetchResource(ctx, user, "/users/1", nil)
		require.NoError(t, err)
		require.NotNil(t, record)

		name, ok := record.Get("name")
		require.True(t, ok)
		assert.Equal(t, "Tobias", name)
	})

	t.Run("NotFound", func(t *testing.T) {
		server := testServer(t, map[string]interface{}{})
		repository := testRepository(t, server.URL)

		record, err := repository.FetchResource(ctx, user, "/users/1", nil)
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("ServerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(server.Close)
		repository := testRepository(t, server.URL)

		_, err := repository.FetchResource(ctx, user, "/users/1", nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ResourceStatus))
	})

	t.Run("InvalidBody", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			_, err := w.Write([]byte("not a json"))
			require.NoError(t, err)
		}))
		t.Cleanup(server.Close)
		repository := testRepository(t, server.URL)

		_, err := repository.FetchResource(ctx, user, "/users/1", nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ResourceDecode))
	})

	t.Run("ConnectionFailed", func(t *testing.T) {
		repository := testRepository(t, "http://127.0.0.1:1", WithTimeout(time.Second))

		_, err := repository.FetchResource(ctx, user, "/users/1", nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ResourceConnectionFailed))
	})
}

// TestFetchCollection tests the collection requests and their envelopes.
func TestFetchCollection(t *testing.T) {
	ctx := context.Background()
	mm := models.NewModelMap(nil)
	user, err := mm.RegisterModel("User")
	require.NoError(t, err)

	t.Run("BareArray", func(t *testing.T) {
		server := testServer(t, map[string]interface{}{
			"/users": []interface{}{
				map[string]interface{}{"id": 1},
				map[string]interface{}{"id": 2},
			},
		})
		repository := testRepository(t, server.URL)

		collection, err := repository.FetchCollection(ctx, user, "/users", nil)
		require.NoError(t, err)
		assert.Equal(t, 2, collection.Len())
	})

	t.Run("CollectionRoot", func(t *testing.T) {
		server := testServer(t, map[string]interface{}{
			"/users": map[string]interface{}{
				"users": []interface{}{
					map[string]interface{}{"id": 1},
				},
			},
		})
		repository := testRepository(t, server.URL)

		collection, err := repository.FetchCollection(ctx, user, "/users", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, collection.Len())
	})

	t.Run("DataRoot", func(t *testing.T) {
		server := testServer(t, map[string]interface{}{
			"/users": map[string]interface{}{
				"data": []interface{}{
					map[string]interface{}{"id": 1},
				},
			},
		})
		repository := testRepository(t, server.URL)

		collection, err := repository.FetchCollection(ctx, user, "/users", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, collection.Len())
	})

	t.Run("NotFound", func(t *testing.T) {
		server := testServer(t, map[string]interface{}{})
		repository := testRepository(t, server.URL)

		collection, err := repository.FetchCollection(ctx, user, "/users", nil)
		require.NoError(t, err)
		assert.Equal(t, 0, collection.Len())
	})

	t.Run("UnexpectedEnvelope", func(t *testing.T) {
		server := testServer(t, map[string]interface{}{
			"/users": map[string]interface{}{"count": 2},
		})
		repository := testRepository(t, server.URL)

		_, err := repository.FetchCollection(ctx, user, "/users", nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ResourceDecode))
	})
}

// TestRequestComposition tests the outgoing request URL and headers.
func TestRequestComposition(t *testing.T) {
	ctx := context.Background()
	mm := models.NewModelMap(nil)
	user, err := mm.RegisterModel("User")
	require.NoError(t, err)

	t.Run("Params", func(t *testing.T) {
		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			gotQuery = req.URL.RawQuery
			_, err := w.Write([]byte("[]"))
			require.NoError(t, err)
		}))
		t.Cleanup(server.Close)
		repository := testRepository(t, server.URL)

		_, err := repository.FetchCollection(ctx, user, "/users", models.Params{"page": 2})
		require.NoError(t, err)
		assert.Equal(t, "page=2", gotQuery)
	})

	t.Run("Headers", func(t *testing.T) {
		var gotAuthorization, gotRequestID string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			gotAuthorization = req.Header.Get("Authorization")
			gotRequestID = req.Header.Get("X-Request-ID")
			_, err := w.Write([]byte("[]"))
			require.NoError(t, err)
		}))
		t.Cleanup(server.Close)
		repository := testRepository(t, server.URL, WithHeader("Authorization", "Bearer token"))

		_, err := repository.FetchCollection(ctx, user, "/users", nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer token", gotAuthorization)
		assert.NotEmpty(t, gotRequestID)
	})

	t.Run("BasePathJoined", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			gotPath = req.URL.Path
			_, err := w.Write([]byte("[]"))
			require.NoError(t, err)
		}))
		t.Cleanup(server.Close)
		repository := testRepository(t, server.URL+"/api/v1/")

		_, err := repository.FetchCollection(ctx, user, "/users", nil)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/users", gotPath)
	})
}
