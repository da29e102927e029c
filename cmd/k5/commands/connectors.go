package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewConnectorsCommand creates the network connectors command group.
func NewConnectorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "connectors",
		Aliases: []string{"connector"},
		Short:   "Manage network connectors",
		Long:    "Manage cross-project network connectors and their endpoints",
	}

	cmd.AddCommand(newConnectorsListCommand())
	cmd.AddCommand(newConnectorsCreateCommand())
	cmd.AddCommand(newConnectorsDeleteCommand())
	cmd.AddCommand(newConnectorEndpointsCommand())

	return cmd
}

func newConnectorsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List network connectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			connectors, err := client.NetworkConnectors().List(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to list network connectors: %w", err)
			}

			if done, err := renderEncoded(connectors); done {
				return err
			}

			if len(connectors) == 0 {
				fmt.Println("No network connectors found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "ID", "Endpoints")

			for _, connector := range connectors {
				table.Append(connector.Name, connector.ID, fmt.Sprintf("%d", len(connector.EndpointIDs)))
			}

			table.Render()

			return nil
		},
	}
}

func newConnectorsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a network connector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			connector, err := client.NetworkConnectors().Create(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to create network connector: %w", err)
			}

			fmt.Printf("Created network connector '%s' with ID %s\n", connector.Name, connector.ID)

			return nil
		},
	}
}

func newConnectorsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CONNECTOR_ID",
		Short: "Delete a network connector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			err = client.NetworkConnectors().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete network connector: %w", err)
			}

			fmt.Printf("Deleted network connector %s\n", args[0])

			return nil
		},
	}
}

func newConnectorEndpointsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "endpoints",
		Aliases: []string{"endpoint"},
		Short:   "Manage network connector endpoints",
	}

	cmd.AddCommand(newConnectorEndpointsListCommand())
	cmd.AddCommand(newConnectorEndpointsCreateCommand())
	cmd.AddCommand(newConnectorEndpointsDeleteCommand())
	cmd.AddCommand(newConnectorEndpointsConnectCommand())
	cmd.AddCommand(newConnectorEndpointsDisconnectCommand())
	cmd.AddCommand(newConnectorEndpointsInterfacesCommand())

	return cmd
}

func newConnectorEndpointsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List network connector endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			endpoints, err := client.NetworkConnectors().ListEndpoints(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to list network connector endpoints: %w", err)
			}

			if done, err := renderEncoded(endpoints); done {
				return err
			}

			if len(endpoints) == 0 {
				fmt.Println("No network connector endpoints found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "ID", "Connector", "Location")

			for _, endpoint := range endpoints {
				table.Append(endpoint.Name, endpoint.ID, endpoint.ConnectorID, endpoint.Location)
			}

			table.Render()

			return nil
		},
	}
}

func newConnectorEndpointsCreateCommand() *cobra.Command {
	var (
		connectorID string
		az          string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a network connector endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			endpoint, err := client.NetworkConnectors().CreateEndpoint(ctx, az, args[0], connectorID)
			if err != nil {
				return fmt.Errorf("failed to create network connector endpoint: %w", err)
			}

			fmt.Printf("Created endpoint '%s' with ID %s\n", endpoint.Name, endpoint.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&connectorID, "connector-id", "", "network connector ID (required)")
	cmd.Flags().StringVar(&az, "az", "", "availability zone (required)")
	_ = cmd.MarkFlagRequired("connector-id")
	_ = cmd.MarkFlagRequired("az")

	return cmd
}

func newConnectorEndpointsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ENDPOINT_ID",
		Short: "Delete a network connector endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			err = client.NetworkConnectors().DeleteEndpoint(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete network connector endpoint: %w", err)
			}

			fmt.Printf("Deleted network connector endpoint %s\n", args[0])

			return nil
		},
	}
}

func newConnectorEndpointsConnectCommand() *cobra.Command {
	var portID string

	cmd := &cobra.Command{
		Use:   "connect ENDPOINT_ID",
		Short: "Connect a port to a network connector endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			err = client.NetworkConnectors().ConnectEndpoint(ctx, args[0], portID)
			if err != nil {
				return fmt.Errorf("failed to connect endpoint: %w", err)
			}

			fmt.Printf("Connected port %s to endpoint %s\n", portID, args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&portID, "port-id", "", "port to connect (required)")
	_ = cmd.MarkFlagRequired("port-id")

	return cmd
}

func newConnectorEndpointsDisconnectCommand() *cobra.Command {
	var portID string

	cmd := &cobra.Command{
		Use:   "disconnect ENDPOINT_ID",
		Short: "Disconnect a port from a network connector endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			err = client.NetworkConnectors().DisconnectEndpoint(ctx, args[0], portID)
			if err != nil {
				return fmt.Errorf("failed to disconnect endpoint: %w", err)
			}

			fmt.Printf("Disconnected port %s from endpoint %s\n", portID, args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&portID, "port-id", "", "port to disconnect (required)")
	_ = cmd.MarkFlagRequired("port-id")

	return cmd
}

func newConnectorEndpointsInterfacesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interfaces ENDPOINT_ID",
		Short: "List ports connected to a network connector endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			interfaces, err := client.NetworkConnectors().ListEndpointInterfaces(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to list endpoint interfaces: %w", err)
			}

			if done, err := renderEncoded(interfaces); done {
				return err
			}

			if len(interfaces) == 0 {
				fmt.Println("No connected ports")

				return nil
			}

			for _, iface := range interfaces {
				fmt.Println(iface.PortID)
			}

			return nil
		},
	}
}
