package client

import (
	"context"
	"encoding/binary"
	"fmt"
	"net/netip"

	"github.com/k5ops/k5go/pkg/k5"
)

// FindFreeIP implements k5.Client.FindFreeIP. It resolves the subnet, takes
// a snapshot of the addresses bound to ports in that subnet, and returns the
// numerically lowest host address strictly above the network address plus
// the query offset that is not in the snapshot. No reservation is made;
// concurrent allocators can race with the result.
func (c *Client) FindFreeIP(ctx context.Context, query k5.FreeIPQuery) (netip.Addr, error) {
	if (query.SubnetID == "") == (query.SubnetName == "") {
		return netip.Addr{}, k5.ErrSubnetSelectorNeeded
	}

	subnetID := query.SubnetID
	if subnetID == "" {
		id, err := c.subnets.GetIDByName(ctx, query.SubnetName)
		if err != nil {
			return netip.Addr{}, err
		}

		subnetID = id
	}

	subnet, err := c.findSubnet(ctx, subnetID)
	if err != nil {
		return netip.Addr{}, err
	}

	prefix, err := netip.ParsePrefix(subnet.CIDR)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("parsing subnet CIDR %q: %w", subnet.CIDR, err)
	}

	if !prefix.Addr().Is4() {
		return netip.Addr{}, k5.ErrIPv4SubnetRequired
	}

	allocated, err := c.allocatedAddresses(ctx, subnetID)
	if err != nil {
		return netip.Addr{}, err
	}

	network := prefix.Masked().Addr()
	broadcast := broadcastAddr(prefix)
	floor := addOffset(network, query.Offset)

	for addr := network.Next(); prefix.Contains(addr) && addr != broadcast; addr = addr.Next() {
		if addr.Compare(floor) <= 0 {
			continue
		}

		if _, taken := allocated[addr]; !taken {
			return addr, nil
		}
	}

	return netip.Addr{}, k5.ErrSubnetExhausted
}

// findSubnet fetches the subnet record by ID from the current listing.
func (c *Client) findSubnet(ctx context.Context, subnetID string) (*k5.Subnet, error) {
	subnets, err := c.subnets.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	for i := range subnets {
		if subnets[i].ID == subnetID {
			return &subnets[i], nil
		}
	}

	return nil, fmt.Errorf("subnet %q: %w", subnetID, k5.ErrNotFound)
}

// allocatedAddresses collects every fixed IP bound to a port in the subnet.
// Addresses that fail to parse are skipped rather than failing the whole
// lookup; they cannot collide with a well-formed candidate anyway.
func (c *Client) allocatedAddresses(ctx context.Context, subnetID string) (map[netip.Addr]struct{}, error) {
	ports, err := c.ports.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	allocated := make(map[netip.Addr]struct{})

	for _, port := range ports {
		for _, fixedIP := range port.FixedIPs {
			if fixedIP.SubnetID != subnetID {
				continue
			}

			addr, err := netip.ParseAddr(fixedIP.IPAddress)
			if err != nil {
				continue
			}

			allocated[addr] = struct{}{}
		}
	}

	return allocated, nil
}

// broadcastAddr returns the highest address in an IPv4 prefix.
func broadcastAddr(prefix netip.Prefix) netip.Addr {
	raw := prefix.Masked().Addr().As4()
	value := binary.BigEndian.Uint32(raw[:])
	value |= ^uint32(0) >> prefix.Bits()
	binary.BigEndian.PutUint32(raw[:], value)

	return netip.AddrFrom4(raw)
}

// addOffset adds n to an IPv4 address, wrapping modulo 2^32. Offsets large
// enough to wrap put the floor outside the prefix, which the scan loop
// handles by exhausting the subnet.
func addOffset(addr netip.Addr, n uint32) netip.Addr {
	raw := addr.As4()
	value := binary.BigEndian.Uint32(raw[:]) + n
	binary.BigEndian.PutUint32(raw[:], value)

	return netip.AddrFrom4(raw)
}
