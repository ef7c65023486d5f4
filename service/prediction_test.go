package service

import (
	"Skyline/dao/cache"
	"Skyline/pkg/errs"
	"Skyline/pkg/predictor"
	"Skyline/types"
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePredictor struct {
	calls int32
	err   error
}

func (f *fakePredictor) Predict(_ context.Context, req *types.PredictPriceRequest) (*types.Prediction, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return &types.Prediction{PredictedPrice: 199.99, Confidence: 0.85, UrgencyLevel: "low"}, nil
}

func (f *fakePredictor) Health(context.Context) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return map[string]any{"status": "healthy"}, nil
}

func TestPredictionService_PredictPriceCaches(t *testing.T) {
	env := newTestEnv(t)
	fake := &fakePredictor{}
	svc := &PredictionService{Predictor: fake, Cache: env.cache}
	ctx := context.Background()
	req := &types.PredictPriceRequest{Departure: "JFK", Arrival: "LAX", DepartureDate: "2030-06-01"}

	p, err := svc.PredictPrice(ctx, req)
	require.NoError(t, err)
	assert.InDelta(t, 199.99, p.PredictedPrice, 0.001)

	p, err = svc.PredictPrice(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "low", p.UrgencyLevel)

	assert.Equal(t, int32(1), atomic.LoadInt32(&fake.calls))
	assert.True(t, env.mr.Exists(cache.PricePredictionKey("JFK", "LAX", "2030-06-01")))
}

func TestPredictionService_ErrorsAreNotCached(t *testing.T) {
	env := newTestEnv(t)
	fake := &fakePredictor{err: predictor.ErrUnavailable}
	svc := &PredictionService{Predictor: fake, Cache: env.cache}
	ctx := context.Background()
	req := &types.PredictPriceRequest{Departure: "JFK", Arrival: "LAX", DepartureDate: "2030-06-01"}

	_, err := svc.PredictPrice(ctx, req)
	require.ErrorIs(t, err, errs.ErrCollaboratorUnavailable)
	assert.False(t, env.mr.Exists(cache.PricePredictionKey("JFK", "LAX", "2030-06-01")))

	fake.err = nil
	p, err := svc.PredictPrice(ctx, req)
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.Equal(t, int32(2), atomic.LoadInt32(&fake.calls))
}

func TestPredictionService_ValidatesFields(t *testing.T) {
	env := newTestEnv(t)
	fake := &fakePredictor{}
	svc := &PredictionService{Predictor: fake, Cache: env.cache}

	_, err := svc.PredictPrice(context.Background(), &types.PredictPriceRequest{Departure: "JFK", Arrival: "LAX"})
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Zero(t, atomic.LoadInt32(&fake.calls))
}
