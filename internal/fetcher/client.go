package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/BerryBytes/tempcredsctl/models"
)

// APIKeyHeader carries the API key on every credential request.
const APIKeyHeader = "api-key"

// DefaultRequestTimeout bounds the credential fetch; there is no retry.
const DefaultRequestTimeout = 5 * time.Second

type RealAPIClient struct {
	HTTPClient HTTPDoer
	APIURL     string
	APIKey     string
}

func NewAPIClient(apiURL, apiKey string) *RealAPIClient {
	return &RealAPIClient{
		HTTPClient: &http.Client{Timeout: DefaultRequestTimeout},
		APIURL:     apiURL,
		APIKey:     apiKey,
	}
}

func (c *RealAPIClient) FetchCredentials(ctx context.Context) (models.CredentialRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build credential request: %w", err)
	}
	req.Header.Set(APIKeyHeader, c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("credential request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("credential endpoint returned status %d", resp.StatusCode)
	}

	var record models.CredentialRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to parse credential response: %w", err)
	}

	return record, nil
}
