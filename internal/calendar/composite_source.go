package calendar

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// CompositeSource implements Source with fallback strategy.
// Malformed tables are not retried on the fallback: they are configuration errors.
type CompositeSource struct {
	primary  Source
	fallback Source
	logger   *zap.Logger
}

// NewCompositeSource creates a new CompositeSource
func NewCompositeSource(primary, fallback Source, logger *zap.Logger) *CompositeSource {
	return &CompositeSource{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (cs *CompositeSource) Name() string {
	return cs.primary.Name() + "|" + cs.fallback.Name()
}

// Load tries the primary source first
func (cs *CompositeSource) Load(ctx context.Context) (HolidayTable, error) {
	table, err := cs.primary.Load(ctx)
	if err == nil {
		return table, nil
	}
	if errors.Is(err, ErrMalformedDate) || errors.Is(err, ErrMalformedTable) {
		return nil, err
	}

	cs.logger.Warn("Primary holiday source failed, falling back",
		zap.String("primary", cs.primary.Name()),
		zap.String("fallback", cs.fallback.Name()),
		zap.Error(err))

	table, fallbackErr := cs.fallback.Load(ctx)
	if fallbackErr != nil {
		return nil, fmt.Errorf("primary and fallback both failed: primary=%w, fallback=%v", err, fallbackErr)
	}
	return table, nil
}
