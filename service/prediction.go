package service

import (
	"Skyline/dao/cache"
	"Skyline/pkg/errs"
	"Skyline/pkg/predictor"
	"Skyline/pkg/utils"
	"Skyline/types"
	"context"
	"strings"
)

var _ IPredictionService = (*PredictionService)(nil)

type IPredictionService interface {
	PredictPrice(ctx context.Context, req *types.PredictPriceRequest) (*types.Prediction, error)
	Health(ctx context.Context) (map[string]any, error)
}

// Predictor is the prediction collaborator.
type Predictor interface {
	Predict(ctx context.Context, req *types.PredictPriceRequest) (*types.Prediction, error)
	Health(ctx context.Context) (map[string]any, error)
}

var _ Predictor = (*predictor.Client)(nil)

type PredictionService struct {
	Predictor Predictor
	Cache     *cache.Cache
}

// PredictPrice 价格预测，结果缓存 10 分钟；失败不缓存
func (s *PredictionService) PredictPrice(ctx context.Context, req *types.PredictPriceRequest) (*types.Prediction, error) {
	in := types.PredictPriceRequest{
		Departure:     strings.TrimSpace(req.Departure),
		Arrival:       strings.TrimSpace(req.Arrival),
		DepartureDate: strings.TrimSpace(req.DepartureDate),
	}
	if utils.IsBlank(in.Departure) || utils.IsBlank(in.Arrival) || utils.IsBlank(in.DepartureDate) {
		return nil, errs.Validation("missing required fields: departure, arrival, departureDate")
	}

	key := cache.PricePredictionKey(in.Departure, in.Arrival, in.DepartureDate)
	return cache.Wrap(ctx, s.Cache, key, cache.PricePredictionTTL,
		func(ctx context.Context) (*types.Prediction, error) {
			return s.Predictor.Predict(ctx, &in)
		})
}

func (s *PredictionService) Health(ctx context.Context) (map[string]any, error) {
	return s.Predictor.Health(ctx)
}
