package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/k5ops/k5go/internal/http"
	"github.com/k5ops/k5go/pkg/k5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworksClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2.0/networks", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body struct {
			Network k5.NetworkCreateRequest `json:"network"`
		}

		err := json.NewDecoder(r.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Equal(t, "app-net", body.Network.Name)
		assert.Equal(t, "fi-1a", body.Network.AvailabilityZone)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]k5.Network{
			"network": {
				ID:               "net-1",
				Name:             "app-net",
				Status:           "ACTIVE",
				AdminStateUp:     true,
				AvailabilityZone: "fi-1a",
			},
		})
	}))
	defer server.Close()

	networks := NewNetworksClient(internalhttp.NewClient(server.URL, nil))

	network, err := networks.Create(context.Background(), &k5.NetworkCreateRequest{
		Name:             "app-net",
		AdminStateUp:     true,
		AvailabilityZone: "fi-1a",
	})
	require.NoError(t, err)
	assert.Equal(t, "net-1", network.ID)
	assert.Equal(t, "ACTIVE", network.Status)
}

func TestNetworksClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2.0/networks", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "ACTIVE", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string][]k5.Network{
			"networks": {
				{ID: "net-1", Name: "app-net"},
				{ID: "net-2", Name: "db-net"},
			},
		})
	}))
	defer server.Close()

	networks := NewNetworksClient(internalhttp.NewClient(server.URL, nil))

	params := k5.NewQueryParams().WithFilter("status", "ACTIVE")
	result, err := networks.List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "db-net", result[1].Name)
}

func TestNetworksClient_GetIDByName(t *testing.T) {
	tests := []struct {
		name       string
		lookup     string
		networks   []k5.Network
		expectedID string
		wantErr    bool
	}{
		{
			name:       "single match",
			lookup:     "app-net",
			networks:   []k5.Network{{ID: "net-1", Name: "app-net"}},
			expectedID: "net-1",
		},
		{
			name:   "duplicate names return first match",
			lookup: "app-net",
			networks: []k5.Network{
				{ID: "net-1", Name: "app-net"},
				{ID: "net-2", Name: "app-net"},
			},
			expectedID: "net-1",
		},
		{
			name:     "no match",
			lookup:   "missing",
			networks: []k5.Network{{ID: "net-1", Name: "app-net"}},
			wantErr:  true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(map[string][]k5.Network{"networks": testCase.networks})
			}))
			defer server.Close()

			networks := NewNetworksClient(internalhttp.NewClient(server.URL, nil))

			id, err := networks.GetIDByName(context.Background(), testCase.lookup)

			if testCase.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, k5.ErrNotFound)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testCase.expectedID, id)
			}
		})
	}
}

func TestNetworksClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2.0/networks/net-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	networks := NewNetworksClient(internalhttp.NewClient(server.URL, nil))

	err := networks.Delete(context.Background(), "net-1")
	require.NoError(t, err)
}

func TestNetworksClient_Delete_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"NeutronError": map[string]string{
				"type":    "NetworkNotFound",
				"message": "Network net-1 could not be found",
			},
		})
	}))
	defer server.Close()

	networks := NewNetworksClient(internalhttp.NewClient(server.URL, nil))

	err := networks.Delete(context.Background(), "net-1")
	require.Error(t, err)
	assert.True(t, k5.IsNotFound(err))
}
