package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/k5ops/k5go/pkg/k5"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSubnetsCommand creates the subnets command group.
func NewSubnetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subnets",
		Aliases: []string{"subnet"},
		Short:   "Manage subnets",
		Long:    "List, create, and delete subnets, and find free addresses in them",
	}

	cmd.AddCommand(newSubnetsListCommand())
	cmd.AddCommand(newSubnetsCreateCommand())
	cmd.AddCommand(newSubnetsDeleteCommand())
	cmd.AddCommand(newSubnetsFreeIPCommand())

	return cmd
}

func newSubnetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List subnets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			subnets, err := client.Subnets().List(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to list subnets: %w", err)
			}

			if done, err := renderEncoded(subnets); done {
				return err
			}

			if len(subnets) == 0 {
				fmt.Println("No subnets found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "ID", "CIDR", "Network", "AZ")

			for _, subnet := range subnets {
				table.Append(subnet.Name, subnet.ID, subnet.CIDR, subnet.NetworkID, subnet.AvailabilityZone)
			}

			table.Render()

			return nil
		},
	}
}

func newSubnetsCreateCommand() *cobra.Command {
	var (
		networkID string
		cidr      string
		az        string
		gatewayIP string
		noDHCP    bool
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a subnet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			request := &k5.SubnetCreateRequest{
				Name:      args[0],
				NetworkID: networkID,
				CIDR:      cidr,
				IPVersion: 4,
			}

			if az != "" {
				request.AvailabilityZone = &az
			}

			if gatewayIP != "" {
				request.GatewayIP = &gatewayIP
			}

			if noDHCP {
				enableDHCP := false
				request.EnableDHCP = &enableDHCP
			}

			subnet, err := client.Subnets().Create(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to create subnet: %w", err)
			}

			fmt.Printf("Created subnet '%s' with ID %s\n", subnet.Name, subnet.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&networkID, "network-id", "", "network to create the subnet in (required)")
	cmd.Flags().StringVar(&cidr, "cidr", "", "subnet CIDR, for example 10.0.0.0/24 (required)")
	cmd.Flags().StringVar(&az, "az", "", "availability zone")
	cmd.Flags().StringVar(&gatewayIP, "gateway-ip", "", "gateway address")
	cmd.Flags().BoolVar(&noDHCP, "no-dhcp", false, "disable DHCP")
	_ = cmd.MarkFlagRequired("network-id")
	_ = cmd.MarkFlagRequired("cidr")

	return cmd
}

func newSubnetsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SUBNET_ID",
		Short: "Delete a subnet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			err = client.Subnets().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete subnet: %w", err)
			}

			fmt.Printf("Deleted subnet %s\n", args[0])

			return nil
		},
	}
}

func newSubnetsFreeIPCommand() *cobra.Command {
	var (
		subnetID   string
		subnetName string
		offset     uint32
	)

	cmd := &cobra.Command{
		Use:   "free-ip",
		Short: "Find the first free address in a subnet",
		Long: `Find the numerically lowest unallocated host address in a subnet.

The result is a snapshot: no reservation is made, so a concurrent
allocation can still take the address before you use it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			addr, err := client.FindFreeIP(ctx, k5.FreeIPQuery{
				SubnetID:   subnetID,
				SubnetName: subnetName,
				Offset:     offset,
			})
			if err != nil {
				return fmt.Errorf("failed to find free IP: %w", err)
			}

			fmt.Println(addr)

			return nil
		},
	}

	cmd.Flags().StringVar(&subnetID, "subnet-id", "", "subnet ID")
	cmd.Flags().StringVar(&subnetName, "subnet-name", "", "subnet name")
	cmd.Flags().Uint32Var(&offset, "offset", 0, "skip addresses at or below network address + offset")
	cmd.MarkFlagsMutuallyExclusive("subnet-id", "subnet-name")

	return cmd
}
