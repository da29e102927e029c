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

// NewSecurityGroupsCommand creates the security groups command group.
func NewSecurityGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "security-groups",
		Aliases: []string{"security-group", "sg"},
		Short:   "Manage security groups",
		Long:    "List, create, and delete security groups and their rules",
	}

	cmd.AddCommand(newSecurityGroupsListCommand())
	cmd.AddCommand(newSecurityGroupsCreateCommand())
	cmd.AddCommand(newSecurityGroupsDeleteCommand())
	cmd.AddCommand(newSecurityGroupsCreateRuleCommand())

	return cmd
}

func newSecurityGroupsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List security groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			groups, err := client.SecurityGroups().List(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to list security groups: %w", err)
			}

			if done, err := renderEncoded(groups); done {
				return err
			}

			if len(groups) == 0 {
				fmt.Println("No security groups found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "ID", "Description", "Rules")

			for _, group := range groups {
				table.Append(group.Name, group.ID, group.Description, fmt.Sprintf("%d", len(group.Rules)))
			}

			table.Render()

			return nil
		},
	}
}

func newSecurityGroupsCreateCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a security group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			group, err := client.SecurityGroups().Create(ctx, &k5.SecurityGroupCreateRequest{
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create security group: %w", err)
			}

			fmt.Printf("Created security group '%s' with ID %s\n", group.Name, group.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "security group description")

	return cmd
}

func newSecurityGroupsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SECURITY_GROUP_ID",
		Short: "Delete a security group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			err = client.SecurityGroups().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete security group: %w", err)
			}

			fmt.Printf("Deleted security group %s\n", args[0])

			return nil
		},
	}
}

func newSecurityGroupsCreateRuleCommand() *cobra.Command {
	var (
		direction      string
		etherType      string
		protocol       string
		portRangeMin   int
		portRangeMax   int
		remoteIPPrefix string
		remoteGroupID  string
	)

	cmd := &cobra.Command{
		Use:   "create-rule SECURITY_GROUP_ID",
		Short: "Add a rule to a security group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			request := &k5.SecurityGroupRuleCreateRequest{
				SecurityGroupID: args[0],
				Direction:       strings.ToLower(direction),
				EtherType:       etherType,
			}

			if protocol != "" {
				request.Protocol = &protocol
			}

			if cmd.Flags().Changed("port-min") {
				request.PortRangeMin = &portRangeMin
			}

			if cmd.Flags().Changed("port-max") {
				request.PortRangeMax = &portRangeMax
			}

			if remoteIPPrefix != "" {
				request.RemoteIPPrefix = &remoteIPPrefix
			}

			if remoteGroupID != "" {
				request.RemoteGroupID = &remoteGroupID
			}

			rule, err := client.SecurityGroups().CreateRule(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to create security group rule: %w", err)
			}

			fmt.Printf("Created rule %s in security group %s\n", rule.ID, rule.SecurityGroupID)

			return nil
		},
	}

	cmd.Flags().StringVar(&direction, "direction", "ingress", "direction (ingress or egress)")
	cmd.Flags().StringVar(&etherType, "ethertype", "IPv4", "ether type (IPv4 or IPv6)")
	cmd.Flags().StringVar(&protocol, "protocol", "", "protocol (tcp, udp, icmp)")
	cmd.Flags().IntVar(&portRangeMin, "port-min", 0, "lower bound of the port range")
	cmd.Flags().IntVar(&portRangeMax, "port-max", 0, "upper bound of the port range")
	cmd.Flags().StringVar(&remoteIPPrefix, "remote-ip-prefix", "", "remote CIDR")
	cmd.Flags().StringVar(&remoteGroupID, "remote-group-id", "", "remote security group ID")

	return cmd
}
