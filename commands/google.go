package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	SHEETS = "https://www.googleapis.com/auth/spreadsheets.readonly"
	DRIVE  = "https://www.googleapis.com/auth/drive.metadata.readonly"
)

// authorize returns an HTTP client authorised for the Google API scope, using the
// OAuth2 token cached under workdir. A missing/expired cache falls back to the
// interactive authorisation flow.
func authorize(credentials, scope, workdir string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	config, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return nil, err
	}

	tokens, err := tokenCache(credentials, scope, workdir)
	if err != nil {
		return nil, err
	}

	return getClient(tokens, config)
}

// Tokens are cached per credentials file and scope e.g. 'credentials.sheets'.
func tokenCache(credentials, scope, workdir string) (string, error) {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	if err := os.MkdirAll(workdir, 0770); err != nil {
		return "", err
	}

	switch {
	case strings.HasPrefix(scope, SHEETS):
		return filepath.Join(workdir, fmt.Sprintf("%s.sheets", name)), nil

	case strings.HasPrefix(scope, DRIVE):
		return filepath.Join(workdir, fmt.Sprintf("%s.drive", name)), nil

	default:
		return filepath.Join(workdir, fmt.Sprintf("%s.tokens", name)), nil
	}
}

// Retrieves a token, saves the token, then returns the generated client.
func getClient(tokens string, config *oauth2.Config) (*http.Client, error) {
	token, err := tokenFromFile(tokens)
	if err != nil {
		if token, err = getTokenFromWeb(config); err != nil {
			return nil, err
		}

		if err := saveToken(tokens, token); err != nil {
			return nil, err
		}
	}

	return config.Client(context.Background(), token), nil
}

// Request a token from the web, then returns the retrieved token.
func getTokenFromWeb(config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the "+
		"authorization code: \n%v\n", authURL)

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return nil, fmt.Errorf("unable to read authorization code (%v)", err)
	}

	token, err := config.Exchange(context.Background(), authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web (%v)", err)
	}

	return token, nil
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(token)

	return token, err
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
