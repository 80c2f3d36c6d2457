// Package store holds the portal's persistent user state: the
// watchlist, the selection set, and the API credentials.
package store

import (
	"context"

	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/common"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/interfaces"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/models"
)

// Fixed persistence keys.
const (
	chatKeyName   = "pplx_api_key"
	visionKeyName = "gemini_api_key"
)

// CredentialStore resolves API keys with layered precedence:
// persisted user value > environment/config default > empty.
// Keys are never validated here; a bad key surfaces as a failed HTTP
// call downstream.
type CredentialStore struct {
	kv       interfaces.KeyValueStorage
	logger   *common.Logger
	defaults models.Credentials
}

// NewCredentialStore creates a credential store over the given KV
// storage with build-time defaults as the fallback layer.
func NewCredentialStore(kv interfaces.KeyValueStorage, defaults models.Credentials, logger *common.Logger) *CredentialStore {
	return &CredentialStore{
		kv:       kv,
		logger:   logger,
		defaults: defaults,
	}
}

// Get returns the current credentials.
func (s *CredentialStore) Get(ctx context.Context) models.Credentials {
	creds := s.defaults

	if v, err := s.kv.Get(ctx, chatKeyName); err == nil && v != "" {
		creds.ChatAPIKey = v
	}
	if v, err := s.kv.Get(ctx, visionKeyName); err == nil && v != "" {
		creds.VisionAPIKey = v
	}

	return creds
}

// Set persists each non-empty field individually. Storage failures are
// logged and swallowed; the caller keeps the in-memory value either way.
func (s *CredentialStore) Set(ctx context.Context, creds models.Credentials) {
	if creds.ChatAPIKey != "" {
		if err := s.kv.Set(ctx, chatKeyName, creds.ChatAPIKey); err != nil {
			s.logger.Warn().Str("error", err.Error()).Msg("failed to persist chat API key")
		}
	}
	if creds.VisionAPIKey != "" {
		if err := s.kv.Set(ctx, visionKeyName, creds.VisionAPIKey); err != nil {
			s.logger.Warn().Str("error", err.Error()).Msg("failed to persist vision API key")
		}
	}
}
