//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/k5ops/k5go/pkg/k5"
	"github.com/k5ops/k5go/pkg/k5client"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Region      string
	ProjectID   string
	Token       string
	Username    string
	Password    string
	Domain      string
	ProjectName string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Region:      os.Getenv("K5_REGION"),
		ProjectID:   os.Getenv("K5_PROJECT_ID"),
		Token:       os.Getenv("K5_TOKEN"),
		Username:    os.Getenv("K5_USERNAME"),
		Password:    os.Getenv("K5_PASSWORD"),
		Domain:      os.Getenv("K5_DOMAIN"),
		ProjectName: os.Getenv("K5_PROJECT_NAME"),
		Verbose:     os.Getenv("K5_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test if required configuration is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	if config.Region == "" {
		t.Skip("K5_REGION not set, skipping integration test")
	}

	if config.Token == "" && (config.Username == "" || config.Password == "") {
		t.Skip("neither K5_TOKEN nor K5_USERNAME/K5_PASSWORD set, skipping integration test")
	}
}

// NewClient creates a client from the test configuration
func (config *TestConfig) NewClient(t *testing.T) k5.Client {
	ctx := context.Background()

	var (
		client k5.Client
		err    error
	)

	if config.Token != "" {
		client, err = k5client.NewWithToken(ctx, config.Region, config.ProjectID, config.Token)
	} else {
		client, err = k5client.NewWithPassword(ctx, config.Region,
			config.Username, config.Password, config.Domain, config.ProjectName)
	}

	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	return client
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}
