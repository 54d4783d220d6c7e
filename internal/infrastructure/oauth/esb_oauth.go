package oauth

import (
	"context"
	"net/http"

	"hostpms-connector/pkg/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ESBOAuth handles client-credentials authentication with the ESB
type ESBOAuth struct {
	config *clientcredentials.Config
	logger logger.Logger
}

// NewESBOAuth creates a new ESB OAuth handler
func NewESBOAuth(tokenURL, clientID, clientSecret string, logger logger.Logger) *ESBOAuth {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}

	return &ESBOAuth{
		config: config,
		logger: logger,
	}
}

// GetTokenSource returns a self-refreshing token source for the ESB API
func (o *ESBOAuth) GetTokenSource(ctx context.Context) oauth2.TokenSource {
	return o.config.TokenSource(ctx)
}

// Client returns an HTTP client that injects and refreshes bearer tokens
func (o *ESBOAuth) Client(ctx context.Context) *http.Client {
	return oauth2.NewClient(ctx, o.GetTokenSource(ctx))
}
