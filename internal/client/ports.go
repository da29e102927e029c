package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/k5ops/k5go/internal/http"
	"github.com/k5ops/k5go/pkg/k5"
)

// PortsClient implements k5.PortsClient.
type PortsClient struct {
	httpClient *http.Client
}

// NewPortsClient creates a new ports client.
func NewPortsClient(httpClient *http.Client) *PortsClient {
	return &PortsClient{
		httpClient: httpClient,
	}
}

// Create implements k5.PortsClient.Create. Fixed IPs and security groups
// left unset never appear in the serialized body; the API rejects explicit
// nulls with a 400.
func (c *PortsClient) Create(ctx context.Context, request *k5.PortCreateRequest) (*k5.Port, error) {
	body := struct {
		Port *k5.PortCreateRequest `json:"port"`
	}{Port: request}

	resp, err := c.httpClient.Post(ctx, "/v2.0/ports", &body)
	if err != nil {
		return nil, fmt.Errorf("creating port: %w", err)
	}

	var envelope struct {
		Port k5.Port `json:"port"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing port response: %w", err)
	}

	return &envelope.Port, nil
}

// List implements k5.PortsClient.List.
func (c *PortsClient) List(ctx context.Context, params *k5.QueryParams) ([]k5.Port, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/v2.0/ports", query)
	if err != nil {
		return nil, fmt.Errorf("listing ports: %w", err)
	}

	var envelope struct {
		Ports []k5.Port `json:"ports"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing ports list: %w", err)
	}

	return envelope.Ports, nil
}

// GetIDByName implements k5.PortsClient.GetIDByName.
func (c *PortsClient) GetIDByName(ctx context.Context, name string) (string, error) {
	ports, err := c.List(ctx, nil)
	if err != nil {
		return "", err
	}

	for _, port := range ports {
		if port.Name == name {
			return port.ID, nil
		}
	}

	return "", fmt.Errorf("port %q: %w", name, k5.ErrNotFound)
}

// Delete implements k5.PortsClient.Delete.
func (c *PortsClient) Delete(ctx context.Context, portID string) error {
	_, err := c.httpClient.Delete(ctx, "/v2.0/ports/"+portID)
	if err != nil {
		return fmt.Errorf("deleting port: %w", err)
	}

	return nil
}
