package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k5ops/k5go/pkg/k5"
)

type stubTokenManager struct {
	token string
	err   error
}

func (m *stubTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, m.err
}

func (m *stubTokenManager) RefreshToken(ctx context.Context) error { return nil }

func (m *stubTokenManager) SetToken(token string, expiresAt time.Time) {}

func TestClient_Do_SetsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("X-Auth-Token"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "k5go-client/1.0", r.Header.Get("User-Agent"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, &stubTokenManager{token: "test-token"})

	resp, err := client.Post(context.Background(), "/v2.0/networks", map[string]string{"key": "value"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestClient_Do_NoTokenHeaderWithoutManager(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("X-Auth-Token"))
		assert.Empty(t, r.Header.Get("Content-Type"))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), "/v2.0/networks", nil)
	require.NoError(t, err)
}

func TestClient_Do_CustomUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-agent/2.0", r.Header.Get("User-Agent"))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, WithUserAgent("custom-agent/2.0"))

	_, err := client.Get(context.Background(), "/", nil)
	require.NoError(t, err)
}

func TestClient_Do_QueryEncoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "web", r.URL.Query().Get("name"))
		assert.Equal(t, "ACTIVE", r.URL.Query().Get("status"))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	query := k5.NewQueryParams().WithFilter("name", "web").WithFilter("status", "ACTIVE")

	_, err := client.Get(context.Background(), "/v2.0/networks", query.ToValues())
	require.NoError(t, err)
}

func TestClient_Do_TokenManagerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the server when token acquisition fails")
	}))
	defer server.Close()

	client := NewClient(server.URL, &stubTokenManager{err: k5.ErrNotAuthenticated})

	_, err := client.Get(context.Background(), "/v2.0/networks", nil)
	assert.ErrorIs(t, err, k5.ErrNotAuthenticated)
}

func TestClient_Do_ClassifiesNeutronError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]map[string]string{
			"NeutronError": {
				"message": "Network abc could not be found.",
				"type":    "NetworkNotFound",
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), "/v2.0/networks/abc", nil)
	require.Error(t, err)

	apiErr := &k5.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "NetworkNotFound", apiErr.Title)
	assert.Equal(t, "Network abc could not be found.", apiErr.Detail)
	assert.True(t, k5.IsNotFound(err))
}

func TestClient_Do_ClassifiesItemNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"itemNotFound":{"message":"Volume vol-1 could not be found."}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), "/v2/project/volumes/vol-1", nil)

	apiErr := &k5.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "itemNotFound", apiErr.Title)
	assert.Equal(t, "Volume vol-1 could not be found.", apiErr.Detail)
}

func TestClient_Do_UnparseableErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable\n"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), "/", nil)

	apiErr := &k5.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Title)
	assert.Equal(t, "upstream unavailable", apiErr.Detail)
}

func TestClient_Do_NoRetryByDefault(t *testing.T) {
	var requests int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), "/", nil)
	require.Error(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&requests))
}

func TestClient_Do_RetryOptIn(t *testing.T) {
	var requests int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&requests, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil,
		WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

	resp, err := client.Get(context.Background(), "/", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(3), atomic.LoadInt64(&requests))
}

func TestClient_Do_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, "/", nil)
	require.Error(t, err)
}
