package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/k5ops/k5go/pkg/k5"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewNetworksCommand creates the networks command group.
func NewNetworksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "networks",
		Aliases: []string{"network"},
		Short:   "Manage networks",
		Long:    "List, create, and delete virtual networks",
	}

	cmd.AddCommand(newNetworksListCommand())
	cmd.AddCommand(newNetworksCreateCommand())
	cmd.AddCommand(newNetworksDeleteCommand())

	return cmd
}

func newNetworksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List networks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			networks, err := client.Networks().List(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to list networks: %w", err)
			}

			if done, err := renderEncoded(networks); done {
				return err
			}

			if len(networks) == 0 {
				fmt.Println("No networks found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "ID", "Status", "AZ")

			for _, network := range networks {
				table.Append(network.Name, network.ID, network.Status, network.AvailabilityZone)
			}

			table.Render()

			return nil
		},
	}
}

func newNetworksCreateCommand() *cobra.Command {
	var az string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			network, err := client.Networks().Create(ctx, &k5.NetworkCreateRequest{
				Name:             args[0],
				AdminStateUp:     true,
				AvailabilityZone: az,
			})
			if err != nil {
				return fmt.Errorf("failed to create network: %w", err)
			}

			fmt.Printf("Created network '%s' with ID %s\n", network.Name, network.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&az, "az", "", "availability zone")

	return cmd
}

func newNetworksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NETWORK_ID_OR_NAME",
		Short: "Delete a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			networkID, err := resolveNetworkID(ctx, client, args[0])
			if err != nil {
				return err
			}

			err = client.Networks().Delete(ctx, networkID)
			if err != nil {
				return fmt.Errorf("failed to delete network: %w", err)
			}

			fmt.Printf("Deleted network %s\n", networkID)

			return nil
		},
	}
}

// resolveNetworkID treats the argument as a name first and falls back to
// using it as an ID.
func resolveNetworkID(ctx context.Context, client k5.Client, nameOrID string) (string, error) {
	id, err := client.Networks().GetIDByName(ctx, nameOrID)
	if err == nil {
		return id, nil
	}

	if k5.IsNotFound(err) {
		return nameOrID, nil
	}

	return "", err
}
