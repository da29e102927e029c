// Package auth provides token managers for the K5 identity service.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/k5ops/k5go/pkg/k5"
)

// expirySlack is subtracted from the token lifetime so a token is renewed
// before the service rejects it mid-request.
const expirySlack = 30 * time.Second

// TokenManager manages authentication tokens.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
	SetToken(token string, expiresAt time.Time)
}

// StaticTokenManager provides a pre-acquired project token.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a token manager around a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return k5.ErrStaticTokenRefresh
}

func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
}

// PasswordConfig holds the credentials for the identity v3 password
// exchange.
type PasswordConfig struct {
	// IdentityEndpoint is the identity service base URL without the /v3
	// prefix.
	IdentityEndpoint string
	Username         string
	Password         string
	Domain           string
	ProjectName      string
	HTTPTimeout      time.Duration
}

// PasswordTokenManager obtains project-scoped tokens from the identity v3
// API and caches them until shortly before expiry. The token is read from
// the X-Subject-Token response header; the scoped project ID is read from
// the response body.
type PasswordTokenManager struct {
	config     PasswordConfig
	httpClient *http.Client

	mu        sync.Mutex
	token     string
	projectID string
	expiresAt time.Time
}

// NewPasswordTokenManager creates a password token manager.
func NewPasswordTokenManager(config PasswordConfig) *PasswordTokenManager {
	return &PasswordTokenManager{
		config:     config,
		httpClient: &http.Client{Timeout: config.HTTPTimeout},
	}
}

// GetToken returns a valid token, performing the password exchange when no
// unexpired token is cached.
func (m *PasswordTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" && time.Now().Before(m.expiresAt.Add(-expirySlack)) {
		return m.token, nil
	}

	err := m.authenticate(ctx)
	if err != nil {
		return "", err
	}

	return m.token, nil
}

// RefreshToken discards the cached token and obtains a fresh one.
func (m *PasswordTokenManager) RefreshToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.authenticate(ctx)
}

// SetToken installs an externally obtained token.
func (m *PasswordTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.expiresAt = expiresAt
}

// ProjectID returns the project ID the token is scoped to, authenticating
// first if needed.
func (m *PasswordTokenManager) ProjectID(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.projectID != "" {
		return m.projectID, nil
	}

	err := m.authenticate(ctx)
	if err != nil {
		return "", err
	}

	return m.projectID, nil
}

type tokenRequest struct {
	Auth struct {
		Identity struct {
			Methods  []string `json:"methods"`
			Password struct {
				User struct {
					Domain struct {
						Name string `json:"name"`
					} `json:"domain"`
					Name     string `json:"name"`
					Password string `json:"password"`
				} `json:"user"`
			} `json:"password"`
		} `json:"identity"`
		Scope struct {
			Project struct {
				Domain struct {
					Name string `json:"name"`
				} `json:"domain"`
				Name string `json:"name"`
			} `json:"project"`
		} `json:"scope"`
	} `json:"auth"`
}

type tokenResponse struct {
	Token struct {
		ExpiresAt time.Time `json:"expires_at"`
		Project   struct {
			ID string `json:"id"`
		} `json:"project"`
	} `json:"token"`
}

// authenticate must be called with the mutex held.
func (m *PasswordTokenManager) authenticate(ctx context.Context) error {
	var reqBody tokenRequest

	reqBody.Auth.Identity.Methods = []string{"password"}
	reqBody.Auth.Identity.Password.User.Domain.Name = m.config.Domain
	reqBody.Auth.Identity.Password.User.Name = m.config.Username
	reqBody.Auth.Identity.Password.User.Password = m.config.Password
	reqBody.Auth.Scope.Project.Domain.Name = m.config.Domain
	reqBody.Auth.Scope.Project.Name = m.config.ProjectName

	payload, err := json.Marshal(&reqBody)
	if err != nil {
		return fmt.Errorf("encoding token request: %w", err)
	}

	url := m.config.IdentityEndpoint + "/v3/auth/tokens"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting token: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return &k5.APIError{
			StatusCode: resp.StatusCode,
			Title:      "token request rejected",
			Detail:     string(body),
		}
	}

	token := resp.Header.Get("X-Subject-Token")
	if token == "" {
		return fmt.Errorf("%w: identity response carried no X-Subject-Token header", k5.ErrNotAuthenticated)
	}

	var parsed tokenResponse

	err = json.Unmarshal(body, &parsed)
	if err != nil {
		return fmt.Errorf("parsing token response: %w", err)
	}

	m.token = token
	m.projectID = parsed.Token.Project.ID
	m.expiresAt = parsed.Token.ExpiresAt

	return nil
}
