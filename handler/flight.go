package handler

import (
	"Skyline/models"
	"Skyline/pkg/context"
	"Skyline/pkg/errs"
	"Skyline/pkg/response"
	"Skyline/service"
	"Skyline/types"

	"github.com/gin-gonic/gin"
)

type Flight struct {
	SearchService     service.ISearchService
	PopularityService service.IPopularityService
	VoteService       service.IVoteService
	ReviewService     service.IReviewService
}

func (h *Flight) RegisterRouter(r gin.IRouter) {
	g := r.Group("/flights")
	g.GET("", context.Wrap(h.Search))
	g.GET("/popular_airports", context.Wrap(h.PopularAirports))
	g.POST("/popular_routes", context.Wrap(h.RecordRoute))
	g.POST("/:id/like", context.Wrap(h.Like))
	g.POST("/:id/dislike", context.Wrap(h.Dislike))
	g.GET("/:id/reviews", context.Wrap(h.ListReviews))
	g.POST("/:id/reviews", context.Wrap(h.PostReview))
}

// Search GET /api/flights?dep&arr&airline&from&to
func (h *Flight) Search(c *gin.Context) error {
	var req types.FlightSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return errs.Validation("invalid query")
	}

	resp, err := h.SearchService.Search(c.Request.Context(), context.GetUserID(c), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Flight) PopularAirports(c *gin.Context) error {
	resp, err := h.PopularityService.PopularAirports(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// RecordRoute 记录一次航线搜索
func (h *Flight) RecordRoute(c *gin.Context) error {
	var req types.RecordRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validation("missing dep or arr")
	}
	if err := h.PopularityService.RecordRouteSearch(c.Request.Context(), req.Dep, req.Arr); err != nil {
		return err
	}
	response.Success(c, types.SuccessResponse{Success: true})
	return nil
}

func (h *Flight) Like(c *gin.Context) error {
	return h.vote(c, models.VoteLike)
}

func (h *Flight) Dislike(c *gin.Context) error {
	return h.vote(c, models.VoteDislike)
}

func (h *Flight) vote(c *gin.Context, voteType string) error {
	uid, err := context.MustUserID(c)
	if err != nil {
		return err
	}
	resp, err := h.VoteService.Vote(c.Request.Context(), c.Param("id"), uid, voteType)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Flight) ListReviews(c *gin.Context) error {
	reviews, err := h.ReviewService.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}
	response.Success(c, types.ReviewListResponse{Reviews: reviews})
	return nil
}

// PostReview POST /api/flights/:id/reviews {comment, score}
func (h *Flight) PostReview(c *gin.Context) error {
	uid, err := context.MustUserID(c)
	if err != nil {
		return err
	}
	var req types.PostReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validation("invalid review body")
	}

	reviews, err := h.ReviewService.Post(c.Request.Context(), c.Param("id"), uid, &req)
	if err != nil {
		return err
	}
	response.Created(c, types.ReviewListResponse{Reviews: reviews})
	return nil
}
