package usecase

import (
	"context"
	"time"

	apikeyDomain "github.com/allisson/apikeys/internal/apikey/domain"
	"github.com/allisson/apikeys/internal/metrics"
)

const metricsDomain = "apikeys"

// keyUseCaseWithMetrics decorates KeyUseCase with metrics instrumentation.
type keyUseCaseWithMetrics struct {
	next    KeyUseCase
	metrics metrics.BusinessMetrics
}

// NewKeyUseCaseWithMetrics wraps a KeyUseCase with metrics recording.
func NewKeyUseCaseWithMetrics(useCase KeyUseCase, m metrics.BusinessMetrics) KeyUseCase {
	return &keyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for key issuance.
func (k *keyUseCaseWithMetrics) Create(
	ctx context.Context,
	secret, scope string,
	level apikeyDomain.Level,
) (string, error) {
	start := time.Now()
	token, err := k.next.Create(ctx, secret, scope, level)

	status := "success"
	if err != nil {
		status = "error"
	}

	k.record(ctx, "key_create", status, start)
	return token, err
}

// CreateBatch records metrics for batch issuance.
func (k *keyUseCaseWithMetrics) CreateBatch(
	ctx context.Context,
	secret, scope string,
	level apikeyDomain.Level,
	count int,
) ([]string, error) {
	start := time.Now()
	tokens, err := k.next.CreateBatch(ctx, secret, scope, level, count)

	status := "success"
	if err != nil {
		status = "error"
	}

	k.record(ctx, "key_create_batch", status, start)
	return tokens, err
}

// Validate records metrics for key validation. A rejected key is recorded as "invalid".
func (k *keyUseCaseWithMetrics) Validate(ctx context.Context, secret, token, scope string) (bool, error) {
	start := time.Now()
	valid, err := k.next.Validate(ctx, secret, token, scope)

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case !valid:
		status = "invalid"
	}

	k.record(ctx, "key_validate", status, start)
	return valid, err
}

func (k *keyUseCaseWithMetrics) record(ctx context.Context, operation, status string, start time.Time) {
	k.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	k.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}
