package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/k5ops/k5go/internal/http"
	"github.com/k5ops/k5go/pkg/k5"
)

// FloatingIPsClient implements k5.FloatingIPsClient.
type FloatingIPsClient struct {
	httpClient *http.Client
}

// NewFloatingIPsClient creates a new floating IPs client.
func NewFloatingIPsClient(httpClient *http.Client) *FloatingIPsClient {
	return &FloatingIPsClient{
		httpClient: httpClient,
	}
}

// AttachToPort implements k5.FloatingIPsClient.AttachToPort. It allocates a
// floating IP from the given external network and binds it to the port.
func (c *FloatingIPsClient) AttachToPort(ctx context.Context, request *k5.FloatingIPCreateRequest) (*k5.FloatingIP, error) {
	body := struct {
		FloatingIP *k5.FloatingIPCreateRequest `json:"floatingip"`
	}{FloatingIP: request}

	resp, err := c.httpClient.Post(ctx, "/v2.0/floatingips", &body)
	if err != nil {
		return nil, fmt.Errorf("attaching floating IP: %w", err)
	}

	var envelope struct {
		FloatingIP k5.FloatingIP `json:"floatingip"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing floating IP response: %w", err)
	}

	return &envelope.FloatingIP, nil
}

// List implements k5.FloatingIPsClient.List.
func (c *FloatingIPsClient) List(ctx context.Context, params *k5.QueryParams) ([]k5.FloatingIP, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/v2.0/floatingips", query)
	if err != nil {
		return nil, fmt.Errorf("listing floating IPs: %w", err)
	}

	var envelope struct {
		FloatingIPs []k5.FloatingIP `json:"floatingips"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing floating IPs list: %w", err)
	}

	return envelope.FloatingIPs, nil
}
