// Package catalog implements a client for the glossary API of a Microsoft Purview
// data governance catalog.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Term is a glossary term as stored in the catalog. ID is assigned by the catalog
// and is empty on create requests. Domain is the GUID of the governance domain the
// term belongs to.
type Term struct {
	ID              string `json:"id,omitempty"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	RichDescription string `json:"richDescription,omitempty"`
	Status          string `json:"status,omitempty"`
	Domain          string `json:"domain"`
}

type domain struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Client wraps the glossary REST operations of the catalog API, presenting the
// bearer token on each request.
type Client struct {
	endpoint string
	token    string
	client   *http.Client
}

// Endpoint constructs the catalog API base URL for a Purview account.
func Endpoint(account string) string {
	return fmt.Sprintf("https://%s-api.purview-service.microsoft.com/datagovernance/catalog", account)
}

func NewClient(endpoint, token string) *Client {
	return &Client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		token:    token,
		client:   http.DefaultClient,
	}
}

// ListTerms retrieves all the glossary terms visible to the service principal.
func (c *Client) ListTerms(ctx context.Context) ([]Term, error) {
	reply := struct {
		Value []Term `json:"value"`
	}{}

	if err := c.do(ctx, http.MethodGet, "/terms", nil, &reply); err != nil {
		return nil, err
	}

	return reply.Value, nil
}

// GetTerm retrieves a single glossary term by ID.
func (c *Client) GetTerm(ctx context.Context, termID string) (*Term, error) {
	term := Term{}

	if err := c.do(ctx, http.MethodGet, "/terms/"+termID, nil, &term); err != nil {
		return nil, err
	}

	return &term, nil
}

// CreateTerm creates a glossary term and returns the ID assigned by the catalog. The
// catalog rejects terms without a valid governance domain reference.
func (c *Client) CreateTerm(ctx context.Context, term Term) (string, error) {
	created := Term{}

	if err := c.do(ctx, http.MethodPost, "/terms", term, &created); err != nil {
		return "", err
	}

	return created.ID, nil
}

// DeleteTerm deletes a glossary term by ID. The catalog replies with 204 on success.
func (c *Client) DeleteTerm(ctx context.Context, termID string) error {
	return c.do(ctx, http.MethodDelete, "/terms/"+termID, nil, nil)
}

// ListDomains retrieves the governance domains defined in the catalog, as a map of
// domain name to domain GUID.
func (c *Client) ListDomains(ctx context.Context) (map[string]string, error) {
	reply := struct {
		Value []domain `json:"value"`
	}{}

	if err := c.do(ctx, http.MethodGet, "/businessdomains", nil, &reply); err != nil {
		return nil, err
	}

	domains := map[string]string{}
	for _, d := range reply.Value {
		domains[d.Name] = d.ID
	}

	return domains, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, reply any) error {
	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}

		reader = bytes.NewReader(encoded)
	}

	rq, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return err
	}

	rq.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		rq.Header.Set("Content-Type", "application/json")
	}

	response, err := c.client.Do(rq)
	if err != nil {
		return err
	}

	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(response.Body)

		return &APIError{
			Status: response.StatusCode,
			Body:   strings.TrimSpace(string(b)),
		}
	}

	if reply != nil {
		if err := json.NewDecoder(response.Body).Decode(reply); err != nil {
			return fmt.Errorf("invalid response from catalog (%v)", err)
		}
	}

	return nil
}
