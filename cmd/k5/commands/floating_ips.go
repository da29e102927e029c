package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/k5ops/k5go/pkg/k5"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewFloatingIPsCommand creates the floating IPs command group.
func NewFloatingIPsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "floating-ips",
		Aliases: []string{"floating-ip", "fip"},
		Short:   "Manage floating IPs",
		Long:    "List floating IPs and attach new ones to ports",
	}

	cmd.AddCommand(newFloatingIPsListCommand())
	cmd.AddCommand(newFloatingIPsAttachCommand())

	return cmd
}

func newFloatingIPsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List floating IPs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			floatingIPs, err := client.FloatingIPs().List(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to list floating IPs: %w", err)
			}

			if done, err := renderEncoded(floatingIPs); done {
				return err
			}

			if len(floatingIPs) == 0 {
				fmt.Println("No floating IPs found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Address", "ID", "Fixed IP", "Port", "Status")

			for _, floatingIP := range floatingIPs {
				table.Append(floatingIP.FloatingIPAddress, floatingIP.ID, floatingIP.FixedIPAddress, floatingIP.PortID, floatingIP.Status)
			}

			table.Render()

			return nil
		},
	}
}

func newFloatingIPsAttachCommand() *cobra.Command {
	var (
		networkID string
		portID    string
		az        string
	)

	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Allocate a floating IP and attach it to a port",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			floatingIP, err := client.FloatingIPs().AttachToPort(ctx, &k5.FloatingIPCreateRequest{
				FloatingNetworkID: networkID,
				PortID:            portID,
				AvailabilityZone:  az,
			})
			if err != nil {
				return fmt.Errorf("failed to attach floating IP: %w", err)
			}

			fmt.Printf("Attached floating IP %s (ID %s) to port %s\n", floatingIP.FloatingIPAddress, floatingIP.ID, portID)

			return nil
		},
	}

	cmd.Flags().StringVar(&networkID, "network-id", "", "external network to allocate from (required)")
	cmd.Flags().StringVar(&portID, "port-id", "", "port to attach to (required)")
	cmd.Flags().StringVar(&az, "az", "", "availability zone")
	_ = cmd.MarkFlagRequired("network-id")
	_ = cmd.MarkFlagRequired("port-id")

	return cmd
}
