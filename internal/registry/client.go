// Package registry defines the boundary contract for the external vehicle
// registry: the lookup port the UI consumes to auto-fill owner details from a
// partial plate match. The normalizer core never performs the network call;
// this package supplies the port, an in-memory caching decorator, and the
// debouncer callers are required to put in front of it.
package registry

import (
	"context"
	"strings"
	"time"

	dErrors "permitdesk/pkg/domain-errors"
)

// minQueryLength is the smallest partial plate the registry accepts.
const minQueryLength = 4

// OwnerRecord is the registry's view of a registered vehicle, used to
// auto-fill the issue forms on an exact match.
type OwnerRecord struct {
	PlateNumber     string
	OwnerName       string
	Address         string
	ChassisNumber   string
	EngineNumber    string
	UnladenWeightKg int
	GrossWeightKg   int
	Contact         string
}

// Client queries the vehicle registry by partial or full plate string.
// Zero matches, one exact match (auto-fill), or several (the caller presents
// a disambiguation list) are all successful outcomes.
type Client interface {
	Search(ctx context.Context, partialPlate string) ([]OwnerRecord, error)
}

// NormalizeQuery uppercases a lookup string and strips separators, then
// enforces the minimum length.
//
// Errors: CodeIncompleteInput when fewer than four usable characters remain.
func NormalizeQuery(partial string) (string, error) {
	q := strings.TrimSpace(partial)
	q = strings.ReplaceAll(q, " ", "")
	q = strings.ReplaceAll(q, "-", "")
	q = strings.ToUpper(q)
	if len(q) < minQueryLength {
		return "", dErrors.New(dErrors.CodeIncompleteInput, "registry lookup requires at least 4 characters")
	}
	return q, nil
}

// MockClient serves lookups from a fixed record set with a configurable
// latency to mimic real-world calls. Used in tests and the CLI.
type MockClient struct {
	Latency time.Duration
	Records []OwnerRecord
}

func (c MockClient) Search(ctx context.Context, partialPlate string) ([]OwnerRecord, error) {
	q, err := NormalizeQuery(partialPlate)
	if err != nil {
		return nil, err
	}
	if c.Latency > 0 {
		select {
		case <-time.After(c.Latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	var matches []OwnerRecord
	for _, rec := range c.Records {
		if strings.HasPrefix(strings.ToUpper(rec.PlateNumber), q) {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}
