// Package client implements the k5.Client interface on top of the
// transport layer, one resource client per service family.
package client

import (
	"context"
	"fmt"

	"github.com/k5ops/k5go/internal/auth"
	"github.com/k5ops/k5go/internal/http"
	"github.com/k5ops/k5go/pkg/k5"
)

// Client implements the k5.Client interface.
type Client struct {
	config       *k5.Config
	tokenManager auth.TokenManager
	endpoints    *k5.Endpoints
	projectID    string
	logger       k5.Logger

	networking   *http.Client
	networkingEx *http.Client
	image        *http.Client
	blockStorage *http.Client
	importExport *http.Client
	vmImport     *http.Client

	networks          k5.NetworksClient
	subnets           k5.SubnetsClient
	ports             k5.PortsClient
	routers           k5.RoutersClient
	securityGroups    k5.SecurityGroupsClient
	floatingIPs       k5.FloatingIPsClient
	networkConnectors k5.NetworkConnectorsClient
	images            k5.ImagesClient
	volumes           k5.VolumesClient
}

// New creates a client from the given configuration. With password
// credentials the project ID is discovered during the token exchange when
// not configured explicitly.
func New(ctx context.Context, config *k5.Config) (*Client, error) {
	if config == nil {
		return nil, k5.ErrConfigRequired
	}

	endpoints := config.Endpoints
	if endpoints == nil {
		if config.Region == "" {
			return nil, k5.ErrRegionRequired
		}

		endpoints = k5.EndpointsForRegion(config.Region)
	}

	tokenManager := createTokenManager(config, endpoints)

	client := &Client{
		config:       config,
		tokenManager: tokenManager,
		endpoints:    endpoints,
		projectID:    config.ProjectID,
		logger:       config.Logger,
	}

	if client.projectID == "" {
		if passwordManager, ok := tokenManager.(*auth.PasswordTokenManager); ok {
			projectID, err := passwordManager.ProjectID(ctx)
			if err != nil {
				return nil, fmt.Errorf("discovering project ID: %w", err)
			}

			client.projectID = projectID
		}
	}

	httpOpts := createHTTPClientOptions(config)
	client.networking = http.NewClient(endpoints.Networking, tokenManager, httpOpts...)
	client.networkingEx = http.NewClient(endpoints.NetworkingEx, tokenManager, httpOpts...)
	client.image = http.NewClient(endpoints.Image, tokenManager, httpOpts...)
	client.blockStorage = http.NewClient(endpoints.BlockStorage, tokenManager, httpOpts...)
	client.importExport = http.NewClient(endpoints.ImportExport, tokenManager, httpOpts...)
	client.vmImport = http.NewClient(endpoints.VMImport, tokenManager, httpOpts...)

	client.initializeResourceClients()

	return client, nil
}

// createTokenManager creates the appropriate token manager based on config.
func createTokenManager(config *k5.Config, endpoints *k5.Endpoints) auth.TokenManager {
	if config.ProjectToken != "" {
		return auth.NewStaticTokenManager(config.ProjectToken)
	}

	if config.Username != "" && config.Password != "" {
		return auth.NewPasswordTokenManager(auth.PasswordConfig{
			IdentityEndpoint: endpoints.Identity,
			Username:         config.Username,
			Password:         config.Password,
			Domain:           config.Domain,
			ProjectName:      config.ProjectName,
			HTTPTimeout:      config.HTTPTimeout,
		})
	}

	return nil // No authentication
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *k5.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.networks = NewNetworksClient(c.networking)
	c.subnets = NewSubnetsClient(c.networking)
	c.ports = NewPortsClient(c.networking)
	c.routers = NewRoutersClient(c.networking, c.networkingEx)
	c.securityGroups = NewSecurityGroupsClient(c.networking)
	c.floatingIPs = NewFloatingIPsClient(c.networking)
	c.networkConnectors = NewNetworkConnectorsClient(c.networking, c.projectID)
	c.images = NewImagesClient(c.image, c.importExport, c.vmImport, c.projectID)
	c.volumes = NewVolumesClient(c.blockStorage, c.projectID)
}

// Networks implements k5.Client.Networks.
func (c *Client) Networks() k5.NetworksClient {
	return c.networks
}

// Subnets implements k5.Client.Subnets.
func (c *Client) Subnets() k5.SubnetsClient {
	return c.subnets
}

// Ports implements k5.Client.Ports.
func (c *Client) Ports() k5.PortsClient {
	return c.ports
}

// Routers implements k5.Client.Routers.
func (c *Client) Routers() k5.RoutersClient {
	return c.routers
}

// SecurityGroups implements k5.Client.SecurityGroups.
func (c *Client) SecurityGroups() k5.SecurityGroupsClient {
	return c.securityGroups
}

// FloatingIPs implements k5.Client.FloatingIPs.
func (c *Client) FloatingIPs() k5.FloatingIPsClient {
	return c.floatingIPs
}

// NetworkConnectors implements k5.Client.NetworkConnectors.
func (c *Client) NetworkConnectors() k5.NetworkConnectorsClient {
	return c.networkConnectors
}

// Images implements k5.Client.Images.
func (c *Client) Images() k5.ImagesClient {
	return c.images
}

// Volumes implements k5.Client.Volumes.
func (c *Client) Volumes() k5.VolumesClient {
	return c.volumes
}

// ProjectID implements k5.Client.ProjectID.
func (c *Client) ProjectID() string {
	return c.projectID
}

// GetToken returns the current token from the token manager.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", k5.ErrNotAuthenticated
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("getting token: %w", err)
	}

	return token, nil
}

// loggerAdapter adapts k5.Logger to the transport logger.
type loggerAdapter struct {
	logger k5.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
