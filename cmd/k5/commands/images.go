package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewImagesCommand creates the images command group.
func NewImagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "images",
		Aliases: []string{"image"},
		Short:   "Manage images",
		Long:    "List images, share them across projects, and export them to object storage",
	}

	cmd.AddCommand(newImagesListCommand())
	cmd.AddCommand(newImagesShowCommand())
	cmd.AddCommand(newImagesShareCommand())
	cmd.AddCommand(newImagesAcceptShareCommand())
	cmd.AddCommand(newImagesExportCommand())
	cmd.AddCommand(newImagesExportStatusCommand())
	cmd.AddCommand(newImagesImportQueueCommand())

	return cmd
}

func newImagesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List images",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			images, err := client.Images().List(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to list images: %w", err)
			}

			if done, err := renderEncoded(images); done {
				return err
			}

			if len(images) == 0 {
				fmt.Println("No images found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "ID", "Status", "Visibility", "Size")

			for _, image := range images {
				table.Append(image.Name, image.ID, image.Status, image.Visibility, fmt.Sprintf("%d", image.Size))
			}

			table.Render()

			return nil
		},
	}
}

func newImagesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show IMAGE_ID",
		Short: "Show image details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			image, err := client.Images().GetInfo(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get image: %w", err)
			}

			if done, err := renderEncoded(image); done {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Field", "Value")
			table.Append("Name", image.Name)
			table.Append("ID", image.ID)
			table.Append("Status", image.Status)
			table.Append("Visibility", image.Visibility)
			table.Append("Disk format", image.DiskFormat)
			table.Append("Container format", image.ContainerFormat)
			table.Append("Size", fmt.Sprintf("%d", image.Size))
			table.Append("Checksum", image.Checksum)
			table.Append("Owner", image.Owner)
			table.Render()

			return nil
		},
	}
}

func newImagesShareCommand() *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "share IMAGE_ID",
		Short: "Share an image with another project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			member, err := client.Images().Share(ctx, projectID, args[0])
			if err != nil {
				return fmt.Errorf("failed to share image: %w", err)
			}

			fmt.Printf("Shared image %s with project %s (status %s)\n", member.ImageID, member.MemberID, member.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "with-project", "", "project to share with (required)")
	_ = cmd.MarkFlagRequired("with-project")

	return cmd
}

func newImagesAcceptShareCommand() *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "accept-share IMAGE_ID",
		Short: "Accept an image shared with your project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			if projectID == "" {
				projectID = client.ProjectID()
			}

			member, err := client.Images().AcceptShare(ctx, projectID, args[0])
			if err != nil {
				return fmt.Errorf("failed to accept image share: %w", err)
			}

			fmt.Printf("Accepted image %s (status %s)\n", member.ImageID, member.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project-id", "", "receiving project ID, defaults to the client's project")

	return cmd
}

func newImagesExportCommand() *cobra.Command {
	var container string

	cmd := &cobra.Command{
		Use:   "export IMAGE_ID",
		Short: "Export an image to object storage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			export, err := client.Images().Export(ctx, args[0], container)
			if err != nil {
				return fmt.Errorf("failed to export image: %w", err)
			}

			fmt.Printf("Export started with ID %s\n", export.ExportID)

			return nil
		},
	}

	cmd.Flags().StringVar(&container, "container", "", "object storage container name (required)")
	_ = cmd.MarkFlagRequired("container")

	return cmd
}

func newImagesExportStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export-status EXPORT_ID",
		Short: "Show the status of an image export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			status, err := client.Images().ExportStatus(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get export status: %w", err)
			}

			if done, err := renderEncoded(status); done {
				return err
			}

			fmt.Printf("Status: %s\n", status.Status)

			if status.Progress > 0 {
				fmt.Printf("Progress: %d%%\n", status.Progress)
			}

			if status.ErrorMessage != "" {
				fmt.Printf("Error: %s\n", status.ErrorMessage)
			}

			return nil
		},
	}
}

func newImagesImportQueueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import-queue",
		Short: "Show the image import queue status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			status, err := client.Images().ImportQueueStatus(ctx)
			if err != nil {
				return fmt.Errorf("failed to get import queue status: %w", err)
			}

			if done, err := renderEncoded(status); done {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Queued", "Processing", "Succeeded", "Failed")
			table.Append(
				fmt.Sprintf("%d", status.QueuedCount),
				fmt.Sprintf("%d", status.ProcessingCount),
				fmt.Sprintf("%d", status.SucceededCount),
				fmt.Sprintf("%d", status.FailedCount),
			)
			table.Render()

			return nil
		},
	}
}
