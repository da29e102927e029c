package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/k5ops/k5go/pkg/k5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newIPAMServer serves the subnet and port listings FindFreeIP depends on.
func newIPAMServer(t *testing.T, subnets []k5.Subnet, ports []k5.Port) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/v2.0/subnets":
			_ = json.NewEncoder(w).Encode(map[string][]k5.Subnet{"subnets": subnets})
		case "/v2.0/ports":
			_ = json.NewEncoder(w).Encode(map[string][]k5.Port{"ports": ports})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
}

func portWithIP(subnetID, ip string) k5.Port {
	return k5.Port{
		ID:       "port-" + ip,
		FixedIPs: []k5.FixedIP{{SubnetID: subnetID, IPAddress: ip}},
	}
}

func TestFindFreeIP_LowestFreeAddress(t *testing.T) {
	subnets := []k5.Subnet{{ID: "subnet-1", Name: "app", CIDR: "10.0.0.0/24", IPVersion: 4}}
	ports := []k5.Port{
		portWithIP("subnet-1", "10.0.0.5"),
	}

	server := newIPAMServer(t, subnets, ports)
	defer server.Close()

	client := newTestClient(server.URL)

	addr, err := client.FindFreeIP(context.Background(), k5.FreeIPQuery{SubnetID: "subnet-1"})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", addr.String())
}

func TestFindFreeIP_SkipsAllocatedRun(t *testing.T) {
	subnets := []k5.Subnet{{ID: "subnet-1", CIDR: "10.0.0.0/24", IPVersion: 4}}
	ports := []k5.Port{
		portWithIP("subnet-1", "10.0.0.1"),
		portWithIP("subnet-1", "10.0.0.2"),
		portWithIP("subnet-1", "10.0.0.3"),
	}

	server := newIPAMServer(t, subnets, ports)
	defer server.Close()

	client := newTestClient(server.URL)

	addr, err := client.FindFreeIP(context.Background(), k5.FreeIPQuery{SubnetID: "subnet-1"})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.4", addr.String())
}

func TestFindFreeIP_OffsetExcludesLowAddresses(t *testing.T) {
	subnets := []k5.Subnet{{ID: "subnet-1", CIDR: "10.0.0.0/24", IPVersion: 4}}

	server := newIPAMServer(t, subnets, nil)
	defer server.Close()

	client := newTestClient(server.URL)

	// The result must be strictly above network address + offset.
	addr, err := client.FindFreeIP(context.Background(), k5.FreeIPQuery{SubnetID: "subnet-1", Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.11", addr.String())
}

func TestFindFreeIP_BySubnetName(t *testing.T) {
	subnets := []k5.Subnet{
		{ID: "subnet-1", Name: "app", CIDR: "10.0.0.0/24", IPVersion: 4},
		{ID: "subnet-2", Name: "db", CIDR: "10.1.0.0/24", IPVersion: 4},
	}

	server := newIPAMServer(t, subnets, nil)
	defer server.Close()

	client := newTestClient(server.URL)

	addr, err := client.FindFreeIP(context.Background(), k5.FreeIPQuery{SubnetName: "db"})
	require.NoError(t, err)
	assert.Equal(t, "10.1.0.1", addr.String())
}

func TestFindFreeIP_IgnoresOtherSubnetAllocations(t *testing.T) {
	subnets := []k5.Subnet{{ID: "subnet-1", CIDR: "10.0.0.0/24", IPVersion: 4}}
	ports := []k5.Port{
		portWithIP("subnet-2", "10.0.0.1"),
	}

	server := newIPAMServer(t, subnets, ports)
	defer server.Close()

	client := newTestClient(server.URL)

	addr, err := client.FindFreeIP(context.Background(), k5.FreeIPQuery{SubnetID: "subnet-1"})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", addr.String())
}

func TestFindFreeIP_LastUsableHost(t *testing.T) {
	subnets := []k5.Subnet{{ID: "subnet-1", CIDR: "10.0.0.0/29", IPVersion: 4}}

	// /29: hosts are .1 through .6; allocate all but .6.
	ports := []k5.Port{
		portWithIP("subnet-1", "10.0.0.1"),
		portWithIP("subnet-1", "10.0.0.2"),
		portWithIP("subnet-1", "10.0.0.3"),
		portWithIP("subnet-1", "10.0.0.4"),
		portWithIP("subnet-1", "10.0.0.5"),
	}

	server := newIPAMServer(t, subnets, ports)
	defer server.Close()

	client := newTestClient(server.URL)

	addr, err := client.FindFreeIP(context.Background(), k5.FreeIPQuery{SubnetID: "subnet-1"})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.6", addr.String())
}

func TestFindFreeIP_Exhausted(t *testing.T) {
	subnets := []k5.Subnet{{ID: "subnet-1", CIDR: "10.0.0.0/30", IPVersion: 4}}

	// /30: .1 and .2 are the only hosts.
	ports := []k5.Port{
		portWithIP("subnet-1", "10.0.0.1"),
		portWithIP("subnet-1", "10.0.0.2"),
	}

	server := newIPAMServer(t, subnets, ports)
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FindFreeIP(context.Background(), k5.FreeIPQuery{SubnetID: "subnet-1"})
	assert.ErrorIs(t, err, k5.ErrSubnetExhausted)
}

func TestFindFreeIP_OffsetBeyondSubnetExhausts(t *testing.T) {
	subnets := []k5.Subnet{{ID: "subnet-1", CIDR: "10.0.0.0/24", IPVersion: 4}}

	server := newIPAMServer(t, subnets, nil)
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FindFreeIP(context.Background(), k5.FreeIPQuery{SubnetID: "subnet-1", Offset: 300})
	assert.ErrorIs(t, err, k5.ErrSubnetExhausted)
}

func TestFindFreeIP_SelectorValidation(t *testing.T) {
	server := newIPAMServer(t, nil, nil)
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FindFreeIP(context.Background(), k5.FreeIPQuery{})
	assert.ErrorIs(t, err, k5.ErrSubnetSelectorNeeded)

	_, err = client.FindFreeIP(context.Background(), k5.FreeIPQuery{SubnetID: "subnet-1", SubnetName: "app"})
	assert.ErrorIs(t, err, k5.ErrSubnetSelectorNeeded)
}

func TestFindFreeIP_UnknownSubnet(t *testing.T) {
	server := newIPAMServer(t, []k5.Subnet{}, nil)
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FindFreeIP(context.Background(), k5.FreeIPQuery{SubnetID: "missing"})
	assert.ErrorIs(t, err, k5.ErrNotFound)
}

func TestFindFreeIP_IPv6SubnetRejected(t *testing.T) {
	subnets := []k5.Subnet{{ID: "subnet-1", CIDR: "2001:db8::/64", IPVersion: 6}}

	server := newIPAMServer(t, subnets, nil)
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FindFreeIP(context.Background(), k5.FreeIPQuery{SubnetID: "subnet-1"})
	assert.ErrorIs(t, err, k5.ErrIPv4SubnetRequired)
}

func TestFindFreeIP_MalformedPortAddressSkipped(t *testing.T) {
	subnets := []k5.Subnet{{ID: "subnet-1", CIDR: "10.0.0.0/24", IPVersion: 4}}
	ports := []k5.Port{
		portWithIP("subnet-1", "not-an-address"),
		portWithIP("subnet-1", "10.0.0.1"),
	}

	server := newIPAMServer(t, subnets, ports)
	defer server.Close()

	client := newTestClient(server.URL)

	addr, err := client.FindFreeIP(context.Background(), k5.FreeIPQuery{SubnetID: "subnet-1"})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2", addr.String())
}
