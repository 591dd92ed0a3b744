package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// Environment variables consumed by the fetcher. The generated wrapper script
// exports them before exec'ing `tempcredsctl fetch`.
const (
	EnvAPIURL    = "AWS_GET_TEMP_CREDS_API_URL"
	EnvAPIKey    = "AWS_GET_TEMP_CREDS_API_KEY"
	EnvCacheFile = "AWS_GET_TEMP_CREDS_CACHE_FILE"
)

// DefaultCacheFileName is the cache file name under ~/.aws.
const DefaultCacheFileName = "credentials_cache.json"

// ErrFetchFailed marks a failed credential fetch. By the time it is returned
// the JSON error payload has already been written to the destination.
var ErrFetchFailed = errors.New("failed to fetch credentials")

type RealProcessor struct {
	Cache  Cache
	Client APIClient
	Now    func() time.Time
}

func NewProcessor(cache Cache, client APIClient) *RealProcessor {
	return &RealProcessor{Cache: cache, Client: client, Now: time.Now}
}

// NewProcessorFromEnv builds a processor from the wrapper-script environment.
func NewProcessorFromEnv(fs afero.Fs) (*RealProcessor, error) {
	apiURL := os.Getenv(EnvAPIURL)
	apiKey := os.Getenv(EnvAPIKey)

	var missing []string
	if apiURL == "" {
		missing = append(missing, EnvAPIURL)
	}
	if apiKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s must be set", strings.Join(missing, " and "))
	}

	cachePath := os.Getenv(EnvCacheFile)
	if cachePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		cachePath = filepath.Join(home, ".aws", DefaultCacheFileName)
	}

	return NewProcessor(NewCache(fs, cachePath), NewAPIClient(apiURL, apiKey)), nil
}

// Run writes exactly one JSON object to dest: the active credential record on
// success, or a single-line error object when the fetch fails. A non-nil
// error means the process must exit non-zero.
func (p *RealProcessor) Run(ctx context.Context, dest io.Writer) error {
	if record, ok := p.Cache.Lookup(p.Now()); ok {
		return writeJSON(dest, record)
	}

	record, err := p.Client.FetchCredentials(ctx)
	if err != nil {
		return p.fail(dest, err)
	}

	if err := record.Normalize(); err != nil {
		return p.fail(dest, err)
	}

	if err := p.Cache.Save(record); err != nil {
		return err
	}

	return writeJSON(dest, record)
}

// fail emits the minimal JSON error object the credential-process contract
// calls for, then reports the underlying cause. No retry, no stale-cache
// fallback.
func (p *RealProcessor) fail(dest io.Writer, cause error) error {
	payload := struct {
		Error string `json:"error"`
	}{Error: ErrFetchFailed.Error()}

	if werr := writeJSON(dest, payload); werr != nil {
		return fmt.Errorf("%w: %v (error payload not written: %v)", ErrFetchFailed, cause, werr)
	}

	return fmt.Errorf("%w: %v", ErrFetchFailed, cause)
}

func writeJSON(dest io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}

	data = append(data, '\n')
	if _, err := dest.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
