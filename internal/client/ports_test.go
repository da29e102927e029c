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

func TestPortsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2.0/ports", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body struct {
			Port k5.PortCreateRequest `json:"port"`
		}

		err := json.NewDecoder(r.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Equal(t, "net-1", body.Port.NetworkID)
		require.Len(t, body.Port.FixedIPs, 1)
		assert.Equal(t, "10.0.0.5", body.Port.FixedIPs[0].IPAddress)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]k5.Port{
			"port": {
				ID:        "port-1",
				Name:      "app-port",
				NetworkID: "net-1",
				FixedIPs:  []k5.FixedIP{{SubnetID: "subnet-1", IPAddress: "10.0.0.5"}},
			},
		})
	}))
	defer server.Close()

	ports := NewPortsClient(internalhttp.NewClient(server.URL, nil))

	port, err := ports.Create(context.Background(), &k5.PortCreateRequest{
		Name:         "app-port",
		NetworkID:    "net-1",
		AdminStateUp: true,
		FixedIPs:     []k5.FixedIP{{SubnetID: "subnet-1", IPAddress: "10.0.0.5"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "port-1", port.ID)
	assert.Equal(t, "10.0.0.5", port.FixedIPs[0].IPAddress)
}

func TestPortsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2.0/ports", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string][]k5.Port{
			"ports": {
				{ID: "port-1", Name: "app-port"},
			},
		})
	}))
	defer server.Close()

	ports := NewPortsClient(internalhttp.NewClient(server.URL, nil))

	result, err := ports.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "app-port", result[0].Name)
}

func TestPortsClient_GetIDByName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string][]k5.Port{
			"ports": {
				{ID: "port-1", Name: "other"},
				{ID: "port-2", Name: "app-port"},
			},
		})
	}))
	defer server.Close()

	ports := NewPortsClient(internalhttp.NewClient(server.URL, nil))

	id, err := ports.GetIDByName(context.Background(), "app-port")
	require.NoError(t, err)
	assert.Equal(t, "port-2", id)
}

func TestPortsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2.0/ports/port-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	ports := NewPortsClient(internalhttp.NewClient(server.URL, nil))

	err := ports.Delete(context.Background(), "port-1")
	require.NoError(t, err)
}
