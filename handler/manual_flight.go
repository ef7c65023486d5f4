package handler

import (
	"Skyline/middleware"
	"Skyline/pkg/context"
	"Skyline/pkg/errs"
	"Skyline/pkg/response"
	"Skyline/service"
	"Skyline/types"

	"github.com/gin-gonic/gin"
)

type ManualFlight struct {
	ManualFlightService service.IManualFlightService
}

func (h *ManualFlight) RegisterRouter(r gin.IRouter) {
	g := r.Group("/users", middleware.RequireAuth())
	g.GET("/manual-flights", context.Wrap(h.List))
	g.GET("/manual-flights/:id", context.Wrap(h.Get))
	g.POST("/manual-flight", context.Wrap(h.Create))
	g.PUT("/manual-flight/:id", context.Wrap(h.Update))
	g.DELETE("/manual-flight/:id", context.Wrap(h.Delete))
}

func (h *ManualFlight) List(c *gin.Context) error {
	items, err := h.ManualFlightService.List(c.Request.Context(), context.GetUserID(c))
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *ManualFlight) Get(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	mf, err := h.ManualFlightService.Get(c.Request.Context(), context.GetUserID(c), id)
	if err != nil {
		return err
	}
	response.Success(c, mf)
	return nil
}

func (h *ManualFlight) Create(c *gin.Context) error {
	var req types.ManualFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validation("invalid manual flight")
	}
	mf, err := h.ManualFlightService.Create(c.Request.Context(), context.GetUserID(c), &req)
	if err != nil {
		return err
	}
	response.Created(c, mf)
	return nil
}

func (h *ManualFlight) Update(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req types.ManualFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validation("invalid manual flight")
	}
	if err := h.ManualFlightService.Update(c.Request.Context(), context.GetUserID(c), id, &req); err != nil {
		return err
	}
	response.Success(c, types.SuccessResponse{Success: true})
	return nil
}

func (h *ManualFlight) Delete(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.ManualFlightService.Delete(c.Request.Context(), context.GetUserID(c), id); err != nil {
		return err
	}
	response.Success(c, types.SuccessResponse{Success: true})
	return nil
}
