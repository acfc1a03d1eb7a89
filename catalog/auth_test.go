package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		assert.Equal(t, "https://purview.azure.net", r.FormValue("resource"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "qwerty-54321", "token_type": "Bearer", "expires_in": 3599}`))
	}))

	defer srv.Close()

	credentials := Credentials{
		TenantID:     "00112233-4455-6677-8899-aabbccddeeff",
		ClientID:     "ffeeddcc-bbaa-9988-7766-554433221100",
		ClientSecret: "super-secret",
		Resource:     "https://purview.azure.net",
		TokenURL:     srv.URL,
	}

	token, err := AcquireToken(context.Background(), credentials)

	require.NoError(t, err)
	assert.Equal(t, "qwerty-54321", token)
}

func TestAcquireTokenWithInvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid_client"}`))
	}))

	defer srv.Close()

	credentials := Credentials{
		TenantID:     "00112233-4455-6677-8899-aabbccddeeff",
		ClientID:     "ffeeddcc-bbaa-9988-7766-554433221100",
		ClientSecret: "wrong-secret",
		Resource:     "https://purview.azure.net",
		TokenURL:     srv.URL,
	}

	token, err := AcquireToken(context.Background(), credentials)

	var autherr *AuthError
	require.Error(t, err)
	assert.True(t, errors.As(err, &autherr))
	assert.Empty(t, token)
}

func TestAcquireTokenWithEmptyAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "", "token_type": "Bearer"}`))
	}))

	defer srv.Close()

	credentials := Credentials{
		TenantID:     "00112233-4455-6677-8899-aabbccddeeff",
		ClientID:     "ffeeddcc-bbaa-9988-7766-554433221100",
		ClientSecret: "super-secret",
		Resource:     "https://purview.azure.net",
		TokenURL:     srv.URL,
	}

	token, err := AcquireToken(context.Background(), credentials)

	var autherr *AuthError
	require.Error(t, err)
	assert.True(t, errors.As(err, &autherr))
	assert.Empty(t, token)
}
