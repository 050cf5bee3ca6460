package intake

import (
	"context"

	"recruitflow-backend/internal/shared/telemetry"
	"recruitflow-backend/internal/tempstore"
)

// Extractor is one strategy in the fallback chain. Attempt either returns a
// populated Record or an error, which advances the chain to the next tier.
type Extractor interface {
	Name() string
	Attempt(ctx context.Context, file tempstore.Handle) (Record, error)
}

// Chain runs extractors in strict descending-fidelity order. The last tier
// is expected to never fail, so Run always produces a record.
type Chain struct {
	tiers []Extractor
}

// NewChain builds a chain from ordered tiers.
func NewChain(tiers ...Extractor) *Chain {
	return &Chain{tiers: tiers}
}

// Run tries each tier in order and returns the first successful record along
// with the name of the tier that produced it. A tier that errors or times
// out is logged and skipped; the error is never surfaced to the caller.
func (c *Chain) Run(ctx context.Context, file tempstore.Handle) (Record, string) {
	for _, tier := range c.tiers {
		rec, err := tier.Attempt(ctx, file)
		if err != nil {
			telemetry.Warn("intake.tier.failed", map[string]any{
				"tier":  tier.Name(),
				"file":  file.DeclaredName,
				"error": err.Error(),
			})
			continue
		}
		return rec, tier.Name()
	}

	// Unreachable with a well-formed chain (the filename tier cannot fail),
	// but keep the no-error guarantee regardless of construction.
	rec, tier := fallbackRecord(file.DeclaredName)
	return rec, tier
}

func fallbackRecord(declaredName string) (Record, string) {
	fallback := FilenameExtractor{}
	rec, _ := fallback.Attempt(context.Background(), tempstore.Handle{DeclaredName: declaredName})
	return rec, fallback.Name()
}
