package fhirhttp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

const tokenExpiryLeeway = 30 * time.Second

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Project     *struct {
		Reference string `json:"reference"`
	} `json:"project,omitempty"`
}

// ClientCredentialsSource performs the OAuth2 client credentials grant and
// caches the token until shortly before it expires.
type ClientCredentialsSource struct {
	TokenUrl     string
	ClientID     string
	ClientSecret string
	HTTPClient   *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
	projectID string
}

func NewClientCredentialsSource(tokenUrl, clientID, clientSecret string) *ClientCredentialsSource {
	return &ClientCredentialsSource{
		TokenUrl:     tokenUrl,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTPClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *ClientCredentialsSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Before(s.expiresAt) {
		return s.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", s.ClientID)
	form.Set("client_secret", s.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.TokenUrl, strings.NewReader(form.Encode()))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", exceptions.ErrAuthenticateFHIRClient(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return "", exceptions.ErrAuthenticateFHIRClient(fmt.Errorf("token endpoint returned %s", resp.Status))
	}

	var result tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", exceptions.ErrAuthenticateFHIRClient(err)
	}
	if result.AccessToken == "" {
		return "", exceptions.ErrAuthenticateFHIRClient(fmt.Errorf("token endpoint returned no access token"))
	}

	s.token = result.AccessToken
	s.expiresAt = time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - tokenExpiryLeeway)
	if result.Project != nil {
		if resourceType, id := utils.ParseReference(result.Project.Reference); resourceType == "" || resourceType == constvars.ResourceProject {
			s.projectID = id
		}
	}
	return s.token, nil
}

// ProjectID is the project the client was granted access to. It is only
// known after the first successful Token call.
func (s *ClientCredentialsSource) ProjectID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projectID
}
