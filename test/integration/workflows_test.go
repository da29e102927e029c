//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/k5ops/k5go/pkg/k5"
)

// TestNetworkLifecycle creates a network with a subnet, finds a free
// address in it, claims the address with a port, and tears everything down.
func TestNetworkLifecycle(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := context.Background()

	networkName := GenerateTestName("k5go-itest-net")

	network, err := client.Networks().Create(ctx, &k5.NetworkCreateRequest{
		Name:         networkName,
		AdminStateUp: true,
	})
	if err != nil {
		t.Fatalf("Failed to create network: %v", err)
	}

	defer func() {
		if err := client.Networks().Delete(ctx, network.ID); err != nil {
			t.Logf("Cleanup warning for network %s: %v", network.ID, err)
		}
	}()

	subnet, err := client.Subnets().Create(ctx, &k5.SubnetCreateRequest{
		Name:      GenerateTestName("k5go-itest-subnet"),
		NetworkID: network.ID,
		CIDR:      "192.168.210.0/24",
		IPVersion: 4,
	})
	if err != nil {
		t.Fatalf("Failed to create subnet: %v", err)
	}

	defer func() {
		if err := client.Subnets().Delete(ctx, subnet.ID); err != nil {
			t.Logf("Cleanup warning for subnet %s: %v", subnet.ID, err)
		}
	}()

	addr, err := client.FindFreeIP(ctx, k5.FreeIPQuery{SubnetID: subnet.ID, Offset: 10})
	if err != nil {
		t.Fatalf("Failed to find a free address: %v", err)
	}

	if config.Verbose {
		t.Logf("Free address in %s: %s", subnet.CIDR, addr)
	}

	port, err := client.Ports().Create(ctx, &k5.PortCreateRequest{
		Name:         GenerateTestName("k5go-itest-port"),
		NetworkID:    network.ID,
		AdminStateUp: true,
		FixedIPs: []k5.FixedIP{
			{SubnetID: subnet.ID, IPAddress: addr.String()},
		},
	})
	if err != nil {
		t.Fatalf("Failed to create port with found address: %v", err)
	}

	defer func() {
		if err := client.Ports().Delete(ctx, port.ID); err != nil {
			t.Logf("Cleanup warning for port %s: %v", port.ID, err)
		}
	}()

	// The address just claimed must no longer be offered.
	next, err := client.FindFreeIP(ctx, k5.FreeIPQuery{SubnetID: subnet.ID, Offset: 10})
	if err != nil {
		t.Fatalf("Failed to find a second free address: %v", err)
	}

	if next == addr {
		t.Errorf("Address %s was offered again after being claimed", addr)
	}
}

// TestImageRegistry lists the image registry and fetches details of the
// first entry. Read-only, safe against any project.
func TestImageRegistry(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := context.Background()

	images, err := client.Images().List(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to list images: %v", err)
	}

	if len(images) == 0 {
		t.Skip("No images visible to this project")
	}

	image, err := client.Images().GetInfo(ctx, images[0].ID)
	if err != nil {
		t.Fatalf("Failed to get image info: %v", err)
	}

	if image.ID != images[0].ID {
		t.Errorf("Image info ID mismatch: got %s, want %s", image.ID, images[0].ID)
	}
}
