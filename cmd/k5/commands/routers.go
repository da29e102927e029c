package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/k5ops/k5go/pkg/k5"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var errInvalidRouteFormat = errors.New("invalid route format, expected DESTINATION=NEXTHOP")

// NewRoutersCommand creates the routers command group.
func NewRoutersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "routers",
		Aliases: []string{"router"},
		Short:   "Manage routers",
		Long:    "List, create, update, and delete routers and their interfaces",
	}

	cmd.AddCommand(newRoutersListCommand())
	cmd.AddCommand(newRoutersCreateCommand())
	cmd.AddCommand(newRoutersDeleteCommand())
	cmd.AddCommand(newRoutersAttachGatewayCommand())
	cmd.AddCommand(newRoutersAddInterfaceCommand())
	cmd.AddCommand(newRoutersRemoveInterfaceCommand())
	cmd.AddCommand(newRoutersUpdateRoutesCommand())

	return cmd
}

func newRoutersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List routers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			routers, err := client.Routers().List(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to list routers: %w", err)
			}

			if done, err := renderEncoded(routers); done {
				return err
			}

			if len(routers) == 0 {
				fmt.Println("No routers found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "ID", "Status", "External Network", "AZ")

			for _, router := range routers {
				externalNetwork := ""
				if router.ExternalGatewayInfo != nil {
					externalNetwork = router.ExternalGatewayInfo.NetworkID
				}

				table.Append(router.Name, router.ID, router.Status, externalNetwork, router.AvailabilityZone)
			}

			table.Render()

			return nil
		},
	}
}

func newRoutersCreateCommand() *cobra.Command {
	var az string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a router",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			adminStateUp := true
			request := &k5.RouterCreateRequest{
				Name:         &args[0],
				AdminStateUp: &adminStateUp,
			}

			if az != "" {
				request.AvailabilityZone = &az
			}

			router, err := client.Routers().Create(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to create router: %w", err)
			}

			fmt.Printf("Created router '%s' with ID %s\n", router.Name, router.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&az, "az", "", "availability zone")

	return cmd
}

func newRoutersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ROUTER_ID",
		Short: "Delete a router",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			err = client.Routers().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete router: %w", err)
			}

			fmt.Printf("Deleted router %s\n", args[0])

			return nil
		},
	}
}

func newRoutersAttachGatewayCommand() *cobra.Command {
	var networkID string

	cmd := &cobra.Command{
		Use:   "attach-gateway ROUTER_ID",
		Short: "Attach a router to an external network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			router, err := client.Routers().Update(ctx, args[0], &k5.RouterUpdateRequest{
				ExternalGatewayInfo: &k5.ExternalGatewayInfo{NetworkID: networkID},
			})
			if err != nil {
				return fmt.Errorf("failed to attach gateway: %w", err)
			}

			fmt.Printf("Attached router %s to external network %s\n", router.ID, networkID)

			return nil
		},
	}

	cmd.Flags().StringVar(&networkID, "network-id", "", "external network ID (required)")
	_ = cmd.MarkFlagRequired("network-id")

	return cmd
}

func newRoutersAddInterfaceCommand() *cobra.Command {
	var (
		subnetID string
		portID   string
	)

	cmd := &cobra.Command{
		Use:   "add-interface ROUTER_ID",
		Short: "Attach an interface to a router",
		Long:  "Attach a router interface selected by exactly one of --subnet-id and --port-id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			result, err := client.Routers().AddInterface(ctx, args[0], &k5.RouterInterfaceRequest{
				SubnetID: subnetID,
				PortID:   portID,
			})
			if err != nil {
				return fmt.Errorf("failed to add router interface: %w", err)
			}

			fmt.Printf("Added interface (port %s) to router %s\n", result.PortID, args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&subnetID, "subnet-id", "", "subnet ID")
	cmd.Flags().StringVar(&portID, "port-id", "", "port ID")
	cmd.MarkFlagsMutuallyExclusive("subnet-id", "port-id")

	return cmd
}

func newRoutersRemoveInterfaceCommand() *cobra.Command {
	var (
		subnetID string
		portID   string
	)

	cmd := &cobra.Command{
		Use:   "remove-interface ROUTER_ID",
		Short: "Detach an interface from a router",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			_, err = client.Routers().RemoveInterface(ctx, args[0], &k5.RouterInterfaceRequest{
				SubnetID: subnetID,
				PortID:   portID,
			})
			if err != nil {
				return fmt.Errorf("failed to remove router interface: %w", err)
			}

			fmt.Printf("Removed interface from router %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&subnetID, "subnet-id", "", "subnet ID")
	cmd.Flags().StringVar(&portID, "port-id", "", "port ID")
	cmd.MarkFlagsMutuallyExclusive("subnet-id", "port-id")

	return cmd
}

func newRoutersUpdateRoutesCommand() *cobra.Command {
	var routes []string

	cmd := &cobra.Command{
		Use:   "update-routes ROUTER_ID",
		Short: "Replace the static routes of a router",
		Long:  "Replace the router's routing table with routes given as DESTINATION=NEXTHOP pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			hostRoutes, err := parseHostRoutes(routes)
			if err != nil {
				return err
			}

			routerID, err := client.Routers().UpdateRoutes(ctx, args[0], hostRoutes)
			if err != nil {
				return fmt.Errorf("failed to update router routes: %w", err)
			}

			fmt.Printf("Updated routes on router %s\n", routerID)

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&routes, "route", nil, "route as DESTINATION=NEXTHOP, repeatable")

	return cmd
}

// parseHostRoutes parses DESTINATION=NEXTHOP pairs. An empty list is valid
// and clears the routing table.
func parseHostRoutes(pairs []string) ([]k5.HostRoute, error) {
	routes := make([]k5.HostRoute, 0, len(pairs))

	for _, pair := range pairs {
		destination, nexthop, ok := strings.Cut(pair, "=")
		if !ok || destination == "" || nexthop == "" {
			return nil, fmt.Errorf("%w: %q", errInvalidRouteFormat, pair)
		}

		routes = append(routes, k5.HostRoute{Destination: destination, Nexthop: nexthop})
	}

	return routes, nil
}
