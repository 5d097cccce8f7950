package fortune

import (
	"context"
	"fmt"
	"fortune/pkg/domain"
	"fortune/pkg/logger"
	"fortune/pkg/metrics"
	"fortune/pkg/serrors"
	"strings"

	"go.uber.org/zap"
)

// ErrUnknownCategory is returned for categories missing from the index. The
// external program is never run for them.
var ErrUnknownCategory = serrors.ErrNotFound

// fortuner is the concrete implementation of the Fortuner interface.
type fortuner struct {
	// categories is the read-only allow-list built at startup.
	categories *domain.CategorySet
	// runner produces fortunes for allowed categories.
	runner Runner
}

// Categories returns the category set built at startup.
func (f fortuner) Categories() *domain.CategorySet {
	return f.categories
}

// Fortune trims category and, unless it is empty, checks it against the
// category set before running the program. This keeps request input from
// reaching the program's argument list unless it names a real category.
func (f fortuner) Fortune(ctx context.Context, category string) (string, error) {
	category = strings.TrimSpace(category)
	if category != "" && !f.categories.Has(category) {
		metrics.FortuneInvocations.WithLabelValues(metrics.OutcomeRejected).Inc()

		return "", serrors.With(ErrUnknownCategory, "unknown category %q", category)
	}

	ctx = logger.WithFields(ctx, zap.String("category", category))

	text, err := f.runner.Run(ctx, category)
	if err != nil {
		logger.Warn(ctx, "could not get fortune", zap.Error(err))

		return "", fmt.Errorf("could not get fortune: %w", err)
	}

	logger.Debug(ctx, "fortune picked", zap.Int("bytes", len(text)))

	return text, nil
}

// New creates a Fortuner that allows the given categories and gets fortunes
// from runner.
func New(categories *domain.CategorySet, runner Runner) Fortuner {
	return &fortuner{
		categories: categories,
		runner:     runner,
	}
}
