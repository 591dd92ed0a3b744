package models

import (
	"fmt"
	"time"
)

// Keys of the well-known credential-process fields. Everything else returned
// by the credential API is passed through to the AWS CLI untouched.
const (
	AccessKeyIDKey     = "AccessKeyId"
	SecretAccessKeyKey = "SecretAccessKey"
	SessionTokenKey    = "SessionToken"
	ExpirationKey      = "Expiration"
	VersionKey         = "Version"
)

// CredentialProcessVersion is the payload version the AWS CLI expects from a
// credential_process executable.
const CredentialProcessVersion = 1

// CredentialRecord is the JSON object exchanged with the credential API and
// persisted in the cache file.
type CredentialRecord map[string]interface{}

// Expiration returns the record's expiration timestamp, normalized to UTC.
func (r CredentialRecord) Expiration() (time.Time, error) {
	raw, ok := r[ExpirationKey]
	if !ok {
		return time.Time{}, fmt.Errorf("credential record has no %s field", ExpirationKey)
	}

	s, ok := raw.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("credential record %s is not a string", ExpirationKey)
	}

	return ParseExpiration(s)
}

// Normalize rewrites the Expiration field as a UTC ISO-8601 string and fills
// in the credential-process Version when the API response omitted it.
func (r CredentialRecord) Normalize() error {
	expiry, err := r.Expiration()
	if err != nil {
		return err
	}

	r[ExpirationKey] = expiry.Format(time.RFC3339)

	if _, ok := r[VersionKey]; !ok {
		r[VersionKey] = CredentialProcessVersion
	}

	return nil
}

// expirationLayouts covers RFC 3339 plus the zone-less ISO-8601 variants some
// credential APIs emit; zone-less timestamps are taken as UTC.
var expirationLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
}

// ParseExpiration parses an ISO-8601 expiration string into a UTC timestamp.
func ParseExpiration(s string) (time.Time, error) {
	for _, layout := range expirationLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid expiration time %q", s)
}
