package handler

import (
	"Skyline/pkg/context"
	"Skyline/pkg/errs"
	"Skyline/pkg/predictor"
	"Skyline/pkg/response"
	"Skyline/service"
	"Skyline/types"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Prediction struct {
	PredictionService service.IPredictionService
}

func (h *Prediction) RegisterRouter(r gin.IRouter) {
	g := r.Group("/predictions")
	g.POST("/price", context.Wrap(h.Price))
	g.GET("/health", context.Wrap(h.Health))
}

// Price POST /api/predictions/price {departure, arrival, departureDate}
func (h *Prediction) Price(c *gin.Context) error {
	var req types.PredictPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validation("missing required fields: departure, arrival, departureDate")
	}

	p, err := h.PredictionService.PredictPrice(c.Request.Context(), &req)
	if err != nil {
		return predictionError(err)
	}
	response.Success(c, types.PredictPriceResponse{Success: true, Prediction: p})
	return nil
}

func (h *Prediction) Health(c *gin.Context) error {
	status, err := h.PredictionService.Health(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Code:   http.StatusServiceUnavailable,
			Msg:    "ML service unavailable",
			Marker: errs.ErrCollaboratorUnavailable.Error(),
			Data: types.PredictionHealthResponse{
				Backend:   "healthy",
				MLService: "unavailable",
				Error:     err.Error(),
			},
		})
		return nil
	}
	response.Success(c, types.PredictionHealthResponse{Backend: "healthy", MLService: status})
	return nil
}

// predictionError maps collaborator failures onto client-facing errors.
func predictionError(err error) error {
	switch {
	case errors.Is(err, predictor.ErrUnavailable):
		return response.NewMarkedError(http.StatusServiceUnavailable, "ML service unavailable", errs.ErrCollaboratorUnavailable.Error())
	case errors.Is(err, predictor.ErrTimeout):
		return response.NewError(http.StatusGatewayTimeout, "ML service timeout")
	}

	var upstream *predictor.UpstreamError
	if errors.As(err, &upstream) && upstream.Status >= 400 && upstream.Status < 500 {
		return response.NewError(http.StatusBadRequest, upstream.Message)
	}
	return err
}
