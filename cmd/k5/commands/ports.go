package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/k5ops/k5go/pkg/k5"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPortsCommand creates the ports command group.
func NewPortsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ports",
		Aliases: []string{"port"},
		Short:   "Manage ports",
		Long:    "List, create, and delete network ports",
	}

	cmd.AddCommand(newPortsListCommand())
	cmd.AddCommand(newPortsCreateCommand())
	cmd.AddCommand(newPortsDeleteCommand())

	return cmd
}

func newPortsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List ports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			ports, err := client.Ports().List(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to list ports: %w", err)
			}

			if done, err := renderEncoded(ports); done {
				return err
			}

			if len(ports) == 0 {
				fmt.Println("No ports found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "ID", "Network", "Fixed IPs", "Status")

			for _, port := range ports {
				addrs := make([]string, 0, len(port.FixedIPs))
				for _, fixedIP := range port.FixedIPs {
					addrs = append(addrs, fixedIP.IPAddress)
				}

				table.Append(port.Name, port.ID, port.NetworkID, strings.Join(addrs, ", "), port.Status)
			}

			table.Render()

			return nil
		},
	}
}

func newPortsCreateCommand() *cobra.Command {
	var (
		networkID      string
		subnetID       string
		ipAddress      string
		az             string
		securityGroups []string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a port",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			request := &k5.PortCreateRequest{
				Name:             args[0],
				NetworkID:        networkID,
				AdminStateUp:     true,
				AvailabilityZone: az,
				SecurityGroups:   securityGroups,
			}

			if ipAddress != "" {
				request.FixedIPs = []k5.FixedIP{{SubnetID: subnetID, IPAddress: ipAddress}}
			}

			port, err := client.Ports().Create(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to create port: %w", err)
			}

			fmt.Printf("Created port '%s' with ID %s\n", port.Name, port.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&networkID, "network-id", "", "network to create the port in (required)")
	cmd.Flags().StringVar(&subnetID, "subnet-id", "", "subnet for the fixed IP")
	cmd.Flags().StringVar(&ipAddress, "ip", "", "fixed IP address, requires --subnet-id")
	cmd.Flags().StringVar(&az, "az", "", "availability zone")
	cmd.Flags().StringSliceVar(&securityGroups, "security-group", nil, "security group ID, repeatable")
	_ = cmd.MarkFlagRequired("network-id")
	cmd.MarkFlagsRequiredTogether("ip", "subnet-id")

	return cmd
}

func newPortsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PORT_ID",
		Short: "Delete a port",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			err = client.Ports().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete port: %w", err)
			}

			fmt.Printf("Deleted port %s\n", args[0])

			return nil
		},
	}
}
