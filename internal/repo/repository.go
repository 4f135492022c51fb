package repo

import (
	"context"

	"github.com/isawsback/isawsback/internal/domain"
)

// ResultKey is the fixed key the single most recent Result lives under in
// every backend.
const ResultKey = "isawsback:last-check"

// ResultStore is the port for durable persistence of the single most
// recent determination. Save unconditionally overwrites the prior record.
// Load returns (nil, nil) when no record exists or the stored record is
// corrupt — a missing prior result is not an error.
type ResultStore interface {
	Save(ctx context.Context, r *domain.Result) error
	Load(ctx context.Context) (*domain.Result, error)
}
