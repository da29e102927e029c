package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/k5ops/k5go/internal/http"
	"github.com/k5ops/k5go/pkg/k5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityGroupsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2.0/security-groups", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]k5.SecurityGroup{
			"security_group": {ID: "sg-1", Name: "web", Description: "web tier"},
		})
	}))
	defer server.Close()

	groups := NewSecurityGroupsClient(internalhttp.NewClient(server.URL, nil))

	group, err := groups.Create(context.Background(), &k5.SecurityGroupCreateRequest{
		Name:        "web",
		Description: "web tier",
	})
	require.NoError(t, err)
	assert.Equal(t, "sg-1", group.ID)
}

func TestSecurityGroupsClient_CreateRule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2.0/security-group-rules", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body struct {
			SecurityGroupRule k5.SecurityGroupRuleCreateRequest `json:"security_group_rule"`
		}

		err := json.NewDecoder(r.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Equal(t, "ingress", body.SecurityGroupRule.Direction)
		require.NotNil(t, body.SecurityGroupRule.PortRangeMin)
		assert.Equal(t, 443, *body.SecurityGroupRule.PortRangeMin)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]k5.SecurityGroupRule{
			"security_group_rule": {
				ID:              "rule-1",
				SecurityGroupID: "sg-1",
				Direction:       "ingress",
			},
		})
	}))
	defer server.Close()

	groups := NewSecurityGroupsClient(internalhttp.NewClient(server.URL, nil))

	protocol := "tcp"
	port := 443
	rule, err := groups.CreateRule(context.Background(), &k5.SecurityGroupRuleCreateRequest{
		SecurityGroupID: "sg-1",
		Direction:       "ingress",
		EtherType:       "IPv4",
		Protocol:        &protocol,
		PortRangeMin:    &port,
		PortRangeMax:    &port,
	})
	require.NoError(t, err)
	assert.Equal(t, "rule-1", rule.ID)
}

// Optional rule attributes left unset must not be serialized as nulls.
func TestSecurityGroupsClient_CreateRule_OmitsUnsetFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var body struct {
			SecurityGroupRule map[string]interface{} `json:"security_group_rule"`
		}

		err = json.Unmarshal(raw, &body)
		assert.NoError(t, err)
		assert.NotContains(t, body.SecurityGroupRule, "protocol")
		assert.NotContains(t, body.SecurityGroupRule, "port_range_min")
		assert.NotContains(t, body.SecurityGroupRule, "port_range_max")
		assert.NotContains(t, body.SecurityGroupRule, "remote_ip_prefix")
		assert.NotContains(t, body.SecurityGroupRule, "remote_group_id")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]k5.SecurityGroupRule{
			"security_group_rule": {ID: "rule-1"},
		})
	}))
	defer server.Close()

	groups := NewSecurityGroupsClient(internalhttp.NewClient(server.URL, nil))

	_, err := groups.CreateRule(context.Background(), &k5.SecurityGroupRuleCreateRequest{
		SecurityGroupID: "sg-1",
		Direction:       "egress",
		EtherType:       "IPv4",
	})
	require.NoError(t, err)
}

func TestSecurityGroupsClient_GetIDByName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string][]k5.SecurityGroup{
			"security_groups": {
				{ID: "sg-1", Name: "web"},
				{ID: "sg-2", Name: "db"},
			},
		})
	}))
	defer server.Close()

	groups := NewSecurityGroupsClient(internalhttp.NewClient(server.URL, nil))

	id, err := groups.GetIDByName(context.Background(), "db")
	require.NoError(t, err)
	assert.Equal(t, "sg-2", id)

	_, err = groups.GetIDByName(context.Background(), "absent")
	assert.ErrorIs(t, err, k5.ErrNotFound)
}

func TestSecurityGroupsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2.0/security-groups/sg-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	groups := NewSecurityGroupsClient(internalhttp.NewClient(server.URL, nil))

	err := groups.Delete(context.Background(), "sg-1")
	require.NoError(t, err)
}
