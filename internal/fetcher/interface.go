package fetcher

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/BerryBytes/tempcredsctl/models"
)

// HTTPDoer is the slice of *http.Client the API client needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIClient fetches a fresh credential record from the credential endpoint.
type APIClient interface {
	FetchCredentials(ctx context.Context) (models.CredentialRecord, error)
}

// Cache is the read-through credential cache persisted on disk.
type Cache interface {
	Lookup(now time.Time) (models.CredentialRecord, bool)
	Save(record models.CredentialRecord) error
}

// CredentialProcessor produces a credential-process JSON payload on dest.
type CredentialProcessor interface {
	Run(ctx context.Context, dest io.Writer) error
}
