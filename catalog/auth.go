package catalog

import (
	"context"
	"fmt"
	"net/url"

	"golang.org/x/oauth2/clientcredentials"
)

// Credentials holds the service principal used to authenticate against the catalog's
// identity provider.
type Credentials struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	Resource     string

	// TokenURL overrides the tenant's login.microsoftonline.com token endpoint.
	TokenURL string
}

// AcquireToken exchanges the service principal credentials for a short-lived bearer
// token scoped to the catalog resource, using the OAuth2 client credentials grant.
// The token is not refreshed - a run is expected to complete well within the token
// lifetime.
func AcquireToken(ctx context.Context, credentials Credentials) (string, error) {
	endpoint := credentials.TokenURL
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/token", credentials.TenantID)
	}

	c := clientcredentials.Config{
		ClientID:     credentials.ClientID,
		ClientSecret: credentials.ClientSecret,
		TokenURL:     endpoint,
		EndpointParams: url.Values{
			"resource": {credentials.Resource},
		},
	}

	token, err := c.Token(ctx)
	if err != nil {
		return "", &AuthError{Err: err}
	}

	if token.AccessToken == "" {
		return "", &AuthError{Err: fmt.Errorf("token endpoint returned an empty access token")}
	}

	return token.AccessToken, nil
}
