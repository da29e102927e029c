package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewVolumesCommand creates the volumes command group.
func NewVolumesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "volumes",
		Aliases: []string{"volume"},
		Short:   "Manage block storage volumes",
	}

	cmd.AddCommand(newVolumesShowCommand())
	cmd.AddCommand(newVolumesCloneCommand())

	return cmd
}

func newVolumesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show VOLUME_ID",
		Short: "Show volume details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			volume, err := client.Volumes().GetInfo(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get volume: %w", err)
			}

			if done, err := renderEncoded(volume); done {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Field", "Value")
			table.Append("Name", volume.Name)
			table.Append("ID", volume.ID)
			table.Append("Status", volume.Status)
			table.Append("Size", fmt.Sprintf("%d GiB", volume.Size))
			table.Append("AZ", volume.AvailabilityZone)
			table.Append("Bootable", volume.Bootable)
			table.Render()

			return nil
		},
	}
}

func newVolumesCloneCommand() *cobra.Command {
	var imageName string

	cmd := &cobra.Command{
		Use:   "clone-to-image VOLUME_ID",
		Short: "Clone a volume into a new image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			result, err := client.Volumes().CloneToImage(ctx, args[0], imageName)
			if err != nil {
				return fmt.Errorf("failed to clone volume to image: %w", err)
			}

			fmt.Printf("Cloning volume to image '%s' (image ID %s, status %s)\n", result.ImageName, result.ImageID, result.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&imageName, "image-name", "", "name for the new image (required)")
	_ = cmd.MarkFlagRequired("image-name")

	return cmd
}
