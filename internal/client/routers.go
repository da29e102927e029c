package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/k5ops/k5go/internal/http"
	"github.com/k5ops/k5go/pkg/k5"
)

// RoutersClient implements k5.RoutersClient. Standard router operations go
// to the networking endpoint; cross-project interface operations go to the
// networking extension endpoint.
type RoutersClient struct {
	httpClient   *http.Client
	httpClientEx *http.Client
}

// NewRoutersClient creates a new routers client.
func NewRoutersClient(httpClient, httpClientEx *http.Client) *RoutersClient {
	return &RoutersClient{
		httpClient:   httpClient,
		httpClientEx: httpClientEx,
	}
}

// Create implements k5.RoutersClient.Create.
func (c *RoutersClient) Create(ctx context.Context, request *k5.RouterCreateRequest) (*k5.Router, error) {
	body := struct {
		Router *k5.RouterCreateRequest `json:"router"`
	}{Router: request}

	resp, err := c.httpClient.Post(ctx, "/v2.0/routers", &body)
	if err != nil {
		return nil, fmt.Errorf("creating router: %w", err)
	}

	var envelope struct {
		Router k5.Router `json:"router"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing router response: %w", err)
	}

	return &envelope.Router, nil
}

// List implements k5.RoutersClient.List.
func (c *RoutersClient) List(ctx context.Context, params *k5.QueryParams) ([]k5.Router, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/v2.0/routers", query)
	if err != nil {
		return nil, fmt.Errorf("listing routers: %w", err)
	}

	var envelope struct {
		Routers []k5.Router `json:"routers"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing routers list: %w", err)
	}

	return envelope.Routers, nil
}

// GetIDByName implements k5.RoutersClient.GetIDByName.
func (c *RoutersClient) GetIDByName(ctx context.Context, name string) (string, error) {
	routers, err := c.List(ctx, nil)
	if err != nil {
		return "", err
	}

	for _, router := range routers {
		if router.Name == name {
			return router.ID, nil
		}
	}

	return "", fmt.Errorf("router %q: %w", name, k5.ErrNotFound)
}

// Update implements k5.RoutersClient.Update.
func (c *RoutersClient) Update(ctx context.Context, routerID string, request *k5.RouterUpdateRequest) (*k5.Router, error) {
	body := struct {
		Router *k5.RouterUpdateRequest `json:"router"`
	}{Router: request}

	resp, err := c.httpClient.Put(ctx, "/v2.0/routers/"+routerID, &body)
	if err != nil {
		return nil, fmt.Errorf("updating router: %w", err)
	}

	var envelope struct {
		Router k5.Router `json:"router"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing router response: %w", err)
	}

	return &envelope.Router, nil
}

// Delete implements k5.RoutersClient.Delete.
func (c *RoutersClient) Delete(ctx context.Context, routerID string) error {
	_, err := c.httpClient.Delete(ctx, "/v2.0/routers/"+routerID)
	if err != nil {
		return fmt.Errorf("deleting router: %w", err)
	}

	return nil
}

// interfaceBody builds the attach/detach payload with exactly one selector
// present, never a null.
type interfaceBody struct {
	SubnetID string `json:"subnet_id,omitempty"`
	PortID   string `json:"port_id,omitempty"`
}

func validateInterfaceRequest(request *k5.RouterInterfaceRequest) error {
	if request == nil {
		return k5.ErrExactlyOneSelector
	}

	if (request.SubnetID == "") == (request.PortID == "") {
		return k5.ErrExactlyOneSelector
	}

	return nil
}

// AddInterface implements k5.RoutersClient.AddInterface. The selector is
// validated locally before any request is issued.
func (c *RoutersClient) AddInterface(ctx context.Context, routerID string, request *k5.RouterInterfaceRequest) (*k5.RouterInterface, error) {
	err := validateInterfaceRequest(request)
	if err != nil {
		return nil, err
	}

	body := interfaceBody{SubnetID: request.SubnetID, PortID: request.PortID}

	resp, err := c.httpClient.Put(ctx, "/v2.0/routers/"+routerID+"/add_router_interface", &body)
	if err != nil {
		return nil, fmt.Errorf("adding router interface: %w", err)
	}

	return parseRouterInterface(resp.Body)
}

// RemoveInterface implements k5.RoutersClient.RemoveInterface.
func (c *RoutersClient) RemoveInterface(ctx context.Context, routerID string, request *k5.RouterInterfaceRequest) (*k5.RouterInterface, error) {
	err := validateInterfaceRequest(request)
	if err != nil {
		return nil, err
	}

	body := interfaceBody{SubnetID: request.SubnetID, PortID: request.PortID}

	resp, err := c.httpClient.Put(ctx, "/v2.0/routers/"+routerID+"/remove_router_interface", &body)
	if err != nil {
		return nil, fmt.Errorf("removing router interface: %w", err)
	}

	return parseRouterInterface(resp.Body)
}

// AddCrossProjectInterface implements
// k5.RoutersClient.AddCrossProjectInterface. The port belongs to the source
// project; the router belongs to the project the token is scoped to.
func (c *RoutersClient) AddCrossProjectInterface(ctx context.Context, routerID, portID string) (*k5.RouterInterface, error) {
	body := interfaceBody{PortID: portID}

	resp, err := c.httpClientEx.Put(ctx, "/v2.0/routers/"+routerID+"/add_cross_project_router_interface", &body)
	if err != nil {
		return nil, fmt.Errorf("adding cross-project router interface: %w", err)
	}

	return parseRouterInterface(resp.Body)
}

// RemoveCrossProjectInterface implements
// k5.RoutersClient.RemoveCrossProjectInterface.
func (c *RoutersClient) RemoveCrossProjectInterface(ctx context.Context, routerID, portID string) (*k5.RouterInterface, error) {
	body := interfaceBody{PortID: portID}

	resp, err := c.httpClientEx.Put(ctx, "/v2.0/routers/"+routerID+"/remove_cross_project_router_interface", &body)
	if err != nil {
		return nil, fmt.Errorf("removing cross-project router interface: %w", err)
	}

	return parseRouterInterface(resp.Body)
}

// UpdateRoutes implements k5.RoutersClient.UpdateRoutes. It replaces the
// routing table used for traffic between projects and returns the router ID.
func (c *RoutersClient) UpdateRoutes(ctx context.Context, routerID string, routes []k5.HostRoute) (string, error) {
	body := struct {
		Router struct {
			Routes []k5.HostRoute `json:"routes"`
		} `json:"router"`
	}{}
	body.Router.Routes = routes

	resp, err := c.httpClientEx.Put(ctx, "/v2.0/routers/"+routerID, &body)
	if err != nil {
		return "", fmt.Errorf("updating router routes: %w", err)
	}

	var envelope struct {
		Router k5.Router `json:"router"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return "", fmt.Errorf("parsing router response: %w", err)
	}

	return envelope.Router.ID, nil
}

func parseRouterInterface(body []byte) (*k5.RouterInterface, error) {
	var result k5.RouterInterface

	err := json.Unmarshal(body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing router interface response: %w", err)
	}

	return &result, nil
}
