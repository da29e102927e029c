package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/k5ops/k5go/internal/http"
	"github.com/k5ops/k5go/pkg/k5"
)

// NetworksClient implements k5.NetworksClient.
type NetworksClient struct {
	httpClient *http.Client
}

// NewNetworksClient creates a new networks client.
func NewNetworksClient(httpClient *http.Client) *NetworksClient {
	return &NetworksClient{
		httpClient: httpClient,
	}
}

// Create implements k5.NetworksClient.Create.
func (c *NetworksClient) Create(ctx context.Context, request *k5.NetworkCreateRequest) (*k5.Network, error) {
	body := struct {
		Network *k5.NetworkCreateRequest `json:"network"`
	}{Network: request}

	resp, err := c.httpClient.Post(ctx, "/v2.0/networks", &body)
	if err != nil {
		return nil, fmt.Errorf("creating network: %w", err)
	}

	var envelope struct {
		Network k5.Network `json:"network"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing network response: %w", err)
	}

	return &envelope.Network, nil
}

// List implements k5.NetworksClient.List.
func (c *NetworksClient) List(ctx context.Context, params *k5.QueryParams) ([]k5.Network, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/v2.0/networks", query)
	if err != nil {
		return nil, fmt.Errorf("listing networks: %w", err)
	}

	var envelope struct {
		Networks []k5.Network `json:"networks"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing networks list: %w", err)
	}

	return envelope.Networks, nil
}

// GetIDByName implements k5.NetworksClient.GetIDByName. The first network
// whose name matches exactly, in listing order, wins.
func (c *NetworksClient) GetIDByName(ctx context.Context, name string) (string, error) {
	networks, err := c.List(ctx, nil)
	if err != nil {
		return "", err
	}

	for _, network := range networks {
		if network.Name == name {
			return network.ID, nil
		}
	}

	return "", fmt.Errorf("network %q: %w", name, k5.ErrNotFound)
}

// Delete implements k5.NetworksClient.Delete.
func (c *NetworksClient) Delete(ctx context.Context, networkID string) error {
	_, err := c.httpClient.Delete(ctx, "/v2.0/networks/"+networkID)
	if err != nil {
		return fmt.Errorf("deleting network: %w", err)
	}

	return nil
}
