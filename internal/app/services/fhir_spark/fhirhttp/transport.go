package fhirhttp

import (
	"context"
	"net/http"
	"questionnaire-service/internal/pkg/constvars"
	"time"
)

type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed access token. An empty token sends no header.
type StaticToken string

func (s StaticToken) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

// BearerTransport attaches the access token of Source to every request.
type BearerTransport struct {
	Source TokenSource
	Base   http.RoundTripper
}

func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.Source.Token(req.Context())
	if err != nil {
		return nil, err
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if token == "" {
		return base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	return base.RoundTrip(clone)
}

func NewHTTPClient(source TokenSource, timeout time.Duration) *http.Client {
	if source == nil {
		source = StaticToken("")
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &BearerTransport{Source: source},
	}
}
