package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/k5ops/k5go/internal/http"
	"github.com/k5ops/k5go/pkg/k5"
)

// NetworkConnectorsClient implements k5.NetworkConnectorsClient. All
// operations go to the networking extension endpoint. Connector and endpoint
// creation stamp the owning project into the request body, which is why the
// client carries the project ID.
type NetworkConnectorsClient struct {
	httpClient *http.Client
	projectID  string
}

// NewNetworkConnectorsClient creates a new network connectors client.
func NewNetworkConnectorsClient(httpClient *http.Client, projectID string) *NetworkConnectorsClient {
	return &NetworkConnectorsClient{
		httpClient: httpClient,
		projectID:  projectID,
	}
}

// Create implements k5.NetworkConnectorsClient.Create.
func (c *NetworkConnectorsClient) Create(ctx context.Context, name string) (*k5.NetworkConnector, error) {
	body := struct {
		NetworkConnector k5.NetworkConnectorCreateRequest `json:"network_connector"`
	}{
		NetworkConnector: k5.NetworkConnectorCreateRequest{
			Name:     name,
			TenantID: c.projectID,
		},
	}

	resp, err := c.httpClient.Post(ctx, "/v2.0/network_connectors", &body)
	if err != nil {
		return nil, fmt.Errorf("creating network connector: %w", err)
	}

	var envelope struct {
		NetworkConnector k5.NetworkConnector `json:"network_connector"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing network connector response: %w", err)
	}

	return &envelope.NetworkConnector, nil
}

// List implements k5.NetworkConnectorsClient.List.
func (c *NetworkConnectorsClient) List(ctx context.Context, params *k5.QueryParams) ([]k5.NetworkConnector, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/v2.0/network_connectors", query)
	if err != nil {
		return nil, fmt.Errorf("listing network connectors: %w", err)
	}

	var envelope struct {
		NetworkConnectors []k5.NetworkConnector `json:"network_connectors"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing network connectors list: %w", err)
	}

	return envelope.NetworkConnectors, nil
}

// GetIDByName implements k5.NetworkConnectorsClient.GetIDByName.
func (c *NetworkConnectorsClient) GetIDByName(ctx context.Context, name string) (string, error) {
	connectors, err := c.List(ctx, nil)
	if err != nil {
		return "", err
	}

	for _, connector := range connectors {
		if connector.Name == name {
			return connector.ID, nil
		}
	}

	return "", fmt.Errorf("network connector %q: %w", name, k5.ErrNotFound)
}

// Delete implements k5.NetworkConnectorsClient.Delete.
func (c *NetworkConnectorsClient) Delete(ctx context.Context, connectorID string) error {
	_, err := c.httpClient.Delete(ctx, "/v2.0/network_connectors/"+connectorID)
	if err != nil {
		return fmt.Errorf("deleting network connector: %w", err)
	}

	return nil
}

// CreateEndpoint implements k5.NetworkConnectorsClient.CreateEndpoint. The
// endpoint is bound to the given availability zone.
func (c *NetworkConnectorsClient) CreateEndpoint(ctx context.Context, az, name, connectorID string) (*k5.NetworkConnectorEndpoint, error) {
	body := struct {
		NetworkConnectorEndpoint k5.NetworkConnectorEndpointCreateRequest `json:"network_connector_endpoint"`
	}{
		NetworkConnectorEndpoint: k5.NetworkConnectorEndpointCreateRequest{
			Name:         name,
			ConnectorID:  connectorID,
			EndpointType: "availability_zone",
			Location:     az,
			TenantID:     c.projectID,
		},
	}

	resp, err := c.httpClient.Post(ctx, "/v2.0/network_connector_endpoints", &body)
	if err != nil {
		return nil, fmt.Errorf("creating network connector endpoint: %w", err)
	}

	var envelope struct {
		NetworkConnectorEndpoint k5.NetworkConnectorEndpoint `json:"network_connector_endpoint"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing network connector endpoint response: %w", err)
	}

	return &envelope.NetworkConnectorEndpoint, nil
}

// ListEndpoints implements k5.NetworkConnectorsClient.ListEndpoints.
func (c *NetworkConnectorsClient) ListEndpoints(ctx context.Context, params *k5.QueryParams) ([]k5.NetworkConnectorEndpoint, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/v2.0/network_connector_endpoints", query)
	if err != nil {
		return nil, fmt.Errorf("listing network connector endpoints: %w", err)
	}

	var envelope struct {
		NetworkConnectorEndpoints []k5.NetworkConnectorEndpoint `json:"network_connector_endpoints"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing network connector endpoints list: %w", err)
	}

	return envelope.NetworkConnectorEndpoints, nil
}

// GetEndpointIDByName implements
// k5.NetworkConnectorsClient.GetEndpointIDByName.
func (c *NetworkConnectorsClient) GetEndpointIDByName(ctx context.Context, name string) (string, error) {
	endpoints, err := c.ListEndpoints(ctx, nil)
	if err != nil {
		return "", err
	}

	for _, endpoint := range endpoints {
		if endpoint.Name == name {
			return endpoint.ID, nil
		}
	}

	return "", fmt.Errorf("network connector endpoint %q: %w", name, k5.ErrNotFound)
}

// GetEndpointInfo implements k5.NetworkConnectorsClient.GetEndpointInfo.
func (c *NetworkConnectorsClient) GetEndpointInfo(ctx context.Context, endpointID string) (*k5.NetworkConnectorEndpoint, error) {
	resp, err := c.httpClient.Get(ctx, "/v2.0/network_connector_endpoints/"+endpointID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting network connector endpoint: %w", err)
	}

	var envelope struct {
		NetworkConnectorEndpoint k5.NetworkConnectorEndpoint `json:"network_connector_endpoint"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing network connector endpoint response: %w", err)
	}

	return &envelope.NetworkConnectorEndpoint, nil
}

// ListEndpointInterfaces implements
// k5.NetworkConnectorsClient.ListEndpointInterfaces.
func (c *NetworkConnectorsClient) ListEndpointInterfaces(ctx context.Context, endpointID string) ([]k5.ConnectorEndpointInterface, error) {
	resp, err := c.httpClient.Get(ctx, "/v2.0/network_connector_endpoints/"+endpointID+"/interfaces", nil)
	if err != nil {
		return nil, fmt.Errorf("listing network connector endpoint interfaces: %w", err)
	}

	var envelope struct {
		NetworkConnectorEndpoint struct {
			Interfaces []k5.ConnectorEndpointInterface `json:"interfaces"`
		} `json:"network_connector_endpoint"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing network connector endpoint interfaces: %w", err)
	}

	return envelope.NetworkConnectorEndpoint.Interfaces, nil
}

// connectBody wraps the port selector for connect/disconnect operations.
type connectBody struct {
	Interface k5.ConnectorEndpointInterface `json:"interface"`
}

// ConnectEndpoint implements k5.NetworkConnectorsClient.ConnectEndpoint.
func (c *NetworkConnectorsClient) ConnectEndpoint(ctx context.Context, endpointID, portID string) error {
	body := connectBody{Interface: k5.ConnectorEndpointInterface{PortID: portID}}

	_, err := c.httpClient.Put(ctx, "/v2.0/network_connector_endpoints/"+endpointID+"/connect", &body)
	if err != nil {
		return fmt.Errorf("connecting network connector endpoint: %w", err)
	}

	return nil
}

// DisconnectEndpoint implements
// k5.NetworkConnectorsClient.DisconnectEndpoint.
func (c *NetworkConnectorsClient) DisconnectEndpoint(ctx context.Context, endpointID, portID string) error {
	body := connectBody{Interface: k5.ConnectorEndpointInterface{PortID: portID}}

	_, err := c.httpClient.Put(ctx, "/v2.0/network_connector_endpoints/"+endpointID+"/disconnect", &body)
	if err != nil {
		return fmt.Errorf("disconnecting network connector endpoint: %w", err)
	}

	return nil
}

// DeleteEndpoint implements k5.NetworkConnectorsClient.DeleteEndpoint. The
// endpoint must have no connected interfaces.
func (c *NetworkConnectorsClient) DeleteEndpoint(ctx context.Context, endpointID string) error {
	_, err := c.httpClient.Delete(ctx, "/v2.0/network_connector_endpoints/"+endpointID)
	if err != nil {
		return fmt.Errorf("deleting network connector endpoint: %w", err)
	}

	return nil
}
