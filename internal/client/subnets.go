package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/k5ops/k5go/internal/http"
	"github.com/k5ops/k5go/pkg/k5"
)

// SubnetsClient implements k5.SubnetsClient.
type SubnetsClient struct {
	httpClient *http.Client
}

// NewSubnetsClient creates a new subnets client.
func NewSubnetsClient(httpClient *http.Client) *SubnetsClient {
	return &SubnetsClient{
		httpClient: httpClient,
	}
}

// Create implements k5.SubnetsClient.Create. Unset optional fields are
// omitted from the serialized body.
func (c *SubnetsClient) Create(ctx context.Context, request *k5.SubnetCreateRequest) (*k5.Subnet, error) {
	body := struct {
		Subnet *k5.SubnetCreateRequest `json:"subnet"`
	}{Subnet: request}

	resp, err := c.httpClient.Post(ctx, "/v2.0/subnets", &body)
	if err != nil {
		return nil, fmt.Errorf("creating subnet: %w", err)
	}

	var envelope struct {
		Subnet k5.Subnet `json:"subnet"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing subnet response: %w", err)
	}

	return &envelope.Subnet, nil
}

// List implements k5.SubnetsClient.List.
func (c *SubnetsClient) List(ctx context.Context, params *k5.QueryParams) ([]k5.Subnet, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/v2.0/subnets", query)
	if err != nil {
		return nil, fmt.Errorf("listing subnets: %w", err)
	}

	var envelope struct {
		Subnets []k5.Subnet `json:"subnets"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing subnets list: %w", err)
	}

	return envelope.Subnets, nil
}

// GetIDByName implements k5.SubnetsClient.GetIDByName.
func (c *SubnetsClient) GetIDByName(ctx context.Context, name string) (string, error) {
	subnets, err := c.List(ctx, nil)
	if err != nil {
		return "", err
	}

	for _, subnet := range subnets {
		if subnet.Name == name {
			return subnet.ID, nil
		}
	}

	return "", fmt.Errorf("subnet %q: %w", name, k5.ErrNotFound)
}

// Delete implements k5.SubnetsClient.Delete.
func (c *SubnetsClient) Delete(ctx context.Context, subnetID string) error {
	_, err := c.httpClient.Delete(ctx, "/v2.0/subnets/"+subnetID)
	if err != nil {
		return fmt.Errorf("deleting subnet: %w", err)
	}

	return nil
}
