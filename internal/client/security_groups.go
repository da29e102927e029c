package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/k5ops/k5go/internal/http"
	"github.com/k5ops/k5go/pkg/k5"
)

// SecurityGroupsClient implements k5.SecurityGroupsClient.
type SecurityGroupsClient struct {
	httpClient *http.Client
}

// NewSecurityGroupsClient creates a new security groups client.
func NewSecurityGroupsClient(httpClient *http.Client) *SecurityGroupsClient {
	return &SecurityGroupsClient{
		httpClient: httpClient,
	}
}

// Create implements k5.SecurityGroupsClient.Create.
func (c *SecurityGroupsClient) Create(ctx context.Context, request *k5.SecurityGroupCreateRequest) (*k5.SecurityGroup, error) {
	body := struct {
		SecurityGroup *k5.SecurityGroupCreateRequest `json:"security_group"`
	}{SecurityGroup: request}

	resp, err := c.httpClient.Post(ctx, "/v2.0/security-groups", &body)
	if err != nil {
		return nil, fmt.Errorf("creating security group: %w", err)
	}

	var envelope struct {
		SecurityGroup k5.SecurityGroup `json:"security_group"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing security group response: %w", err)
	}

	return &envelope.SecurityGroup, nil
}

// List implements k5.SecurityGroupsClient.List.
func (c *SecurityGroupsClient) List(ctx context.Context, params *k5.QueryParams) ([]k5.SecurityGroup, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/v2.0/security-groups", query)
	if err != nil {
		return nil, fmt.Errorf("listing security groups: %w", err)
	}

	var envelope struct {
		SecurityGroups []k5.SecurityGroup `json:"security_groups"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing security groups list: %w", err)
	}

	return envelope.SecurityGroups, nil
}

// GetIDByName implements k5.SecurityGroupsClient.GetIDByName.
func (c *SecurityGroupsClient) GetIDByName(ctx context.Context, name string) (string, error) {
	groups, err := c.List(ctx, nil)
	if err != nil {
		return "", err
	}

	for _, group := range groups {
		if group.Name == name {
			return group.ID, nil
		}
	}

	return "", fmt.Errorf("security group %q: %w", name, k5.ErrNotFound)
}

// Delete implements k5.SecurityGroupsClient.Delete.
func (c *SecurityGroupsClient) Delete(ctx context.Context, securityGroupID string) error {
	_, err := c.httpClient.Delete(ctx, "/v2.0/security-groups/"+securityGroupID)
	if err != nil {
		return fmt.Errorf("deleting security group: %w", err)
	}

	return nil
}

// CreateRule implements k5.SecurityGroupsClient.CreateRule. Optional rule
// attributes left unset are omitted from the serialized body.
func (c *SecurityGroupsClient) CreateRule(ctx context.Context, request *k5.SecurityGroupRuleCreateRequest) (*k5.SecurityGroupRule, error) {
	body := struct {
		SecurityGroupRule *k5.SecurityGroupRuleCreateRequest `json:"security_group_rule"`
	}{SecurityGroupRule: request}

	resp, err := c.httpClient.Post(ctx, "/v2.0/security-group-rules", &body)
	if err != nil {
		return nil, fmt.Errorf("creating security group rule: %w", err)
	}

	var envelope struct {
		SecurityGroupRule k5.SecurityGroupRule `json:"security_group_rule"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing security group rule response: %w", err)
	}

	return &envelope.SecurityGroupRule, nil
}
