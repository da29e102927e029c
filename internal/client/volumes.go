package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/k5ops/k5go/internal/http"
	"github.com/k5ops/k5go/pkg/k5"
)

// VolumesClient implements k5.VolumesClient. Block storage paths are scoped
// by project ID.
type VolumesClient struct {
	httpClient *http.Client
	projectID  string
}

// NewVolumesClient creates a new volumes client.
func NewVolumesClient(httpClient *http.Client, projectID string) *VolumesClient {
	return &VolumesClient{
		httpClient: httpClient,
		projectID:  projectID,
	}
}

// GetInfo implements k5.VolumesClient.GetInfo.
func (c *VolumesClient) GetInfo(ctx context.Context, volumeID string) (*k5.Volume, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/"+c.projectID+"/volumes/"+volumeID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting volume: %w", err)
	}

	var envelope struct {
		Volume k5.Volume `json:"volume"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing volume response: %w", err)
	}

	return &envelope.Volume, nil
}

// CloneToImage implements k5.VolumesClient.CloneToImage. The volume is
// uploaded as a raw image under the given name; force is set so attached
// volumes can be cloned too.
func (c *VolumesClient) CloneToImage(ctx context.Context, volumeID, imageName string) (*k5.VolumeUploadImage, error) {
	body := struct {
		UploadImage struct {
			ImageName       string `json:"image_name"`
			ContainerFormat string `json:"container_format"`
			DiskFormat      string `json:"disk_format"`
			Force           bool   `json:"force"`
		} `json:"os-volume_upload_image"`
	}{}
	body.UploadImage.ImageName = imageName
	body.UploadImage.ContainerFormat = "bare"
	body.UploadImage.DiskFormat = "raw"
	body.UploadImage.Force = true

	resp, err := c.httpClient.Post(ctx, "/v2/"+c.projectID+"/volumes/"+volumeID+"/action", &body)
	if err != nil {
		return nil, fmt.Errorf("cloning volume to image: %w", err)
	}

	var envelope struct {
		UploadImage k5.VolumeUploadImage `json:"os-volume_upload_image"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing volume upload response: %w", err)
	}

	return &envelope.UploadImage, nil
}
