package fetcher

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/BerryBytes/tempcredsctl/models"
)

// ExpirationThreshold is the safety margin before actual expiry at which
// cached credentials are treated as stale and refreshed.
const ExpirationThreshold = 5 * time.Minute

// RealCache persists the last-fetched credential record as a single JSON
// file. Concurrent invocations may race on it; last writer wins.
type RealCache struct {
	Fs        afero.Fs
	Path      string
	Threshold time.Duration
}

func NewCache(fs afero.Fs, path string) *RealCache {
	return &RealCache{Fs: fs, Path: path, Threshold: ExpirationThreshold}
}

// Lookup returns the cached record when it is still comfortably inside its
// expiration window. A missing, unreadable, or malformed cache file is a
// miss, never an error.
func (c *RealCache) Lookup(now time.Time) (models.CredentialRecord, bool) {
	data, err := afero.ReadFile(c.Fs, c.Path)
	if err != nil {
		return nil, false
	}

	var record models.CredentialRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, false
	}

	expiry, err := record.Expiration()
	if err != nil {
		return nil, false
	}

	if !now.Before(expiry.Add(-c.Threshold)) {
		return nil, false
	}

	return record, true
}

// Save overwrites the cache file with the given record.
func (c *RealCache) Save(record models.CredentialRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize credential record: %w", err)
	}

	if err := afero.WriteFile(c.Fs, c.Path, data, 0600); err != nil {
		return fmt.Errorf("failed to write cache file %s: %w", c.Path, err)
	}

	return nil
}
