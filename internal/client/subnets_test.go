package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/k5ops/k5go/internal/http"
	"github.com/k5ops/k5go/pkg/k5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubnetsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2.0/subnets", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body struct {
			Subnet k5.SubnetCreateRequest `json:"subnet"`
		}

		err := json.NewDecoder(r.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Equal(t, "10.0.0.0/24", body.Subnet.CIDR)
		assert.Equal(t, 4, body.Subnet.IPVersion)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]k5.Subnet{
			"subnet": {
				ID:        "subnet-1",
				Name:      "app-subnet",
				NetworkID: "net-1",
				CIDR:      "10.0.0.0/24",
				IPVersion: 4,
			},
		})
	}))
	defer server.Close()

	subnets := NewSubnetsClient(internalhttp.NewClient(server.URL, nil))

	subnet, err := subnets.Create(context.Background(), &k5.SubnetCreateRequest{
		Name:      "app-subnet",
		NetworkID: "net-1",
		CIDR:      "10.0.0.0/24",
		IPVersion: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "subnet-1", subnet.ID)
}

// Unset optional fields must not appear in the request body at all. Several
// endpoints reject explicit nulls with a 400.
func TestSubnetsClient_Create_OmitsUnsetOptionalFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var body struct {
			Subnet map[string]interface{} `json:"subnet"`
		}

		err = json.Unmarshal(raw, &body)
		assert.NoError(t, err)
		assert.NotContains(t, body.Subnet, "gateway_ip")
		assert.NotContains(t, body.Subnet, "enable_dhcp")
		assert.NotContains(t, body.Subnet, "availability_zone")
		assert.NotContains(t, body.Subnet, "allocation_pools")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]k5.Subnet{
			"subnet": {ID: "subnet-1"},
		})
	}))
	defer server.Close()

	subnets := NewSubnetsClient(internalhttp.NewClient(server.URL, nil))

	_, err := subnets.Create(context.Background(), &k5.SubnetCreateRequest{
		NetworkID: "net-1",
		CIDR:      "10.0.0.0/24",
		IPVersion: 4,
	})
	require.NoError(t, err)
}

func TestSubnetsClient_GetIDByName_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string][]k5.Subnet{"subnets": {}})
	}))
	defer server.Close()

	subnets := NewSubnetsClient(internalhttp.NewClient(server.URL, nil))

	_, err := subnets.GetIDByName(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, k5.ErrNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestSubnetsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2.0/subnets/subnet-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	subnets := NewSubnetsClient(internalhttp.NewClient(server.URL, nil))

	err := subnets.Delete(context.Background(), "subnet-1")
	require.NoError(t, err)
}
