// Package store persists parsed offers. Two backends implement the same
// interface: SQLite for the single-user desktop case and Postgres for shared
// deployments.
package store

import (
	"context"

	"github.com/deltagida/offerscan/internal/model"
)

// OfferFilter specifies criteria for listing offers.
type OfferFilter struct {
	Firm     string `json:"firm,omitempty"`
	Currency string `json:"currency,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for parsed offers. Offers upsert
// on their source path, so re-scanning a folder refreshes records instead of
// duplicating them.
type Store interface {
	UpsertOffer(ctx context.Context, rec *model.OfferRecord) (*model.OfferRecord, error)
	GetOffer(ctx context.Context, sourcePath string) (*model.OfferRecord, error)
	ListOffers(ctx context.Context, filter OfferFilter) ([]model.OfferRecord, error)
	DeleteOffer(ctx context.Context, sourcePath string) error

	// Summarize aggregates total amounts per firm and subject.
	Summarize(ctx context.Context) ([]model.OfferSummary, error)

	Migrate(ctx context.Context) error
	Close() error
}
