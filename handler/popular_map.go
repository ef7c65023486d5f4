package handler

import (
	"Skyline/pkg/context"
	"Skyline/pkg/response"
	"Skyline/service"

	"github.com/gin-gonic/gin"
)

type PopularMap struct {
	PopularityService service.IPopularityService
}

func (h *PopularMap) RegisterRouter(r gin.IRouter) {
	r.GET("/popular-map", context.Wrap(h.GetMap))
}

// GetMap 热门航线热力图
func (h *PopularMap) GetMap(c *gin.Context) error {
	data, err := h.PopularityService.PopularMap(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, data)
	return nil
}
