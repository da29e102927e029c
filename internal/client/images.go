package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/k5ops/k5go/internal/http"
	"github.com/k5ops/k5go/pkg/k5"
)

// ImagesClient implements k5.ImagesClient. Registry and sharing operations
// go to the image endpoint; exports are submitted to the import-export
// endpoint and their status is read from the VM import endpoint.
type ImagesClient struct {
	httpClient         *http.Client
	importExportClient *http.Client
	vmImportClient     *http.Client
	projectID          string
}

// NewImagesClient creates a new images client.
func NewImagesClient(httpClient, importExportClient, vmImportClient *http.Client, projectID string) *ImagesClient {
	return &ImagesClient{
		httpClient:         httpClient,
		importExportClient: importExportClient,
		vmImportClient:     vmImportClient,
		projectID:          projectID,
	}
}

// List implements k5.ImagesClient.List.
func (c *ImagesClient) List(ctx context.Context, params *k5.QueryParams) ([]k5.Image, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/v2/images", query)
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}

	var envelope struct {
		Images []k5.Image `json:"images"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing images list: %w", err)
	}

	return envelope.Images, nil
}

// GetIDByName implements k5.ImagesClient.GetIDByName.
func (c *ImagesClient) GetIDByName(ctx context.Context, name string) (string, error) {
	images, err := c.List(ctx, nil)
	if err != nil {
		return "", err
	}

	for _, image := range images {
		if image.Name == name {
			return image.ID, nil
		}
	}

	return "", fmt.Errorf("image %q: %w", name, k5.ErrNotFound)
}

// GetInfo implements k5.ImagesClient.GetInfo. A single image is returned
// without an envelope.
func (c *ImagesClient) GetInfo(ctx context.Context, imageID string) (*k5.Image, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/images/"+imageID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting image: %w", err)
	}

	var image k5.Image

	err = json.Unmarshal(resp.Body, &image)
	if err != nil {
		return nil, fmt.Errorf("parsing image response: %w", err)
	}

	return &image, nil
}

// Share implements k5.ImagesClient.Share. It invites the given project as a
// member of the image; the receiving project still has to accept.
func (c *ImagesClient) Share(ctx context.Context, projectID, imageID string) (*k5.ImageMember, error) {
	body := struct {
		Member string `json:"member"`
	}{Member: projectID}

	resp, err := c.httpClient.Post(ctx, "/v2/images/"+imageID+"/members", &body)
	if err != nil {
		return nil, fmt.Errorf("sharing image: %w", err)
	}

	return parseImageMember(resp.Body)
}

// AcceptShare implements k5.ImagesClient.AcceptShare. It is called with a
// token scoped to the receiving project.
func (c *ImagesClient) AcceptShare(ctx context.Context, projectID, imageID string) (*k5.ImageMember, error) {
	body := struct {
		Status string `json:"status"`
	}{Status: "accepted"}

	resp, err := c.httpClient.Put(ctx, "/v2/images/"+imageID+"/members/"+projectID, &body)
	if err != nil {
		return nil, fmt.Errorf("accepting image share: %w", err)
	}

	return parseImageMember(resp.Body)
}

// Export implements k5.ImagesClient.Export. The image is written into the
// named object storage container in the client's project.
func (c *ImagesClient) Export(ctx context.Context, imageID, containerName string) (*k5.ImageExport, error) {
	body := struct {
		ImageID          string `json:"image_id"`
		StorageContainer string `json:"storage_container"`
	}{
		ImageID:          imageID,
		StorageContainer: "/v1/AUTH_" + c.projectID + "/" + containerName,
	}

	resp, err := c.importExportClient.Post(ctx, "/v1/imageexport", &body)
	if err != nil {
		return nil, fmt.Errorf("exporting image: %w", err)
	}

	var export k5.ImageExport

	err = json.Unmarshal(resp.Body, &export)
	if err != nil {
		return nil, fmt.Errorf("parsing image export response: %w", err)
	}

	return &export, nil
}

// ExportStatus implements k5.ImagesClient.ExportStatus. Polling cadence is
// the caller's responsibility.
func (c *ImagesClient) ExportStatus(ctx context.Context, exportID string) (*k5.ImageExportStatus, error) {
	resp, err := c.vmImportClient.Get(ctx, "/v1/imageexport/"+exportID+"/status", nil)
	if err != nil {
		return nil, fmt.Errorf("getting image export status: %w", err)
	}

	var status k5.ImageExportStatus

	err = json.Unmarshal(resp.Body, &status)
	if err != nil {
		return nil, fmt.Errorf("parsing image export status: %w", err)
	}

	return &status, nil
}

// ImportQueueStatus implements k5.ImagesClient.ImportQueueStatus.
func (c *ImagesClient) ImportQueueStatus(ctx context.Context) (*k5.ImageImportQueueStatus, error) {
	resp, err := c.vmImportClient.Get(ctx, "/v1/imageimport", nil)
	if err != nil {
		return nil, fmt.Errorf("getting image import queue status: %w", err)
	}

	var status k5.ImageImportQueueStatus

	err = json.Unmarshal(resp.Body, &status)
	if err != nil {
		return nil, fmt.Errorf("parsing image import queue status: %w", err)
	}

	return &status, nil
}

func parseImageMember(body []byte) (*k5.ImageMember, error) {
	var member k5.ImageMember

	err := json.Unmarshal(body, &member)
	if err != nil {
		return nil, fmt.Errorf("parsing image member response: %w", err)
	}

	return &member, nil
}
