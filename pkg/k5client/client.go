// Package k5client provides the main entry point for creating K5 API clients.
package k5client

import (
	"context"
	"fmt"

	"github.com/k5ops/k5go/internal/client"
	"github.com/k5ops/k5go/pkg/k5"
)

// New creates a new K5 API client from the given configuration.
func New(ctx context.Context, config *k5.Config) (k5.Client, error) {
	if config == nil {
		return nil, k5.ErrConfigRequired
	}

	if config.Region == "" && config.Endpoints == nil {
		return nil, k5.ErrRegionRequired
	}

	c, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithToken creates a new client for a region using a pre-acquired
// project token.
func NewWithToken(ctx context.Context, region, projectID, token string) (k5.Client, error) {
	return New(ctx, &k5.Config{
		Region:       region,
		ProjectID:    projectID,
		ProjectToken: token,
	})
}

// NewWithPassword creates a new client for a region using identity v3
// password authentication. The project ID is discovered during the token
// exchange.
func NewWithPassword(ctx context.Context, region, username, password, domain, projectName string) (k5.Client, error) {
	return New(ctx, &k5.Config{
		Region:      region,
		Username:    username,
		Password:    password,
		Domain:      domain,
		ProjectName: projectName,
	})
}
