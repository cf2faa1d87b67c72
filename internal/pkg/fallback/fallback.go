// Package fallback implements the ordered "try several near-identical
// strategies, first success wins" pattern shared by payload and header
// resolution.
package fallback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Step is one candidate in an ordered fallback chain.
type Step[T any] struct {
	Name string
	Run  func(ctx context.Context) (T, error)
}

// First runs steps in order and returns the first successful result.
// Individual step failures are expected and logged at debug level; if every
// step fails, the joined per-step errors are returned.
func First[T any](ctx context.Context, steps []Step[T]) (T, error) {
	var zero T
	if len(steps) == 0 {
		return zero, errors.New("fallback: no steps configured")
	}

	var errs []error
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		v, err := step.Run(ctx)
		if err == nil {
			return v, nil
		}
		slog.Debug("Fallback step failed", "step", step.Name, "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", step.Name, err))
	}
	return zero, errors.Join(errs...)
}
