package handler

import (
	"Skyline/config"
	"Skyline/middleware"
	"Skyline/pkg/context"
	"Skyline/pkg/errs"
	"Skyline/pkg/response"
	"Skyline/service"
	"Skyline/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config             *config.Config
	UserService        service.IUserService
	SavedSearchService service.ISavedSearchService
	AirportService     service.IAirportService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/users")
	g.POST("/register", context.Wrap(u.Register))
	g.POST("/login", context.Wrap(u.Login))
	g.GET("/logout", context.Wrap(u.Logout))
	g.GET("/check-auth", context.Wrap(u.CheckAuth))
	g.GET("/autocomplete", context.Wrap(u.Autocomplete))

	authorized := g.Group("", middleware.RequireAuth())
	authorized.GET("/searches", context.Wrap(u.Searches))
	authorized.GET("/search-again/:id", context.Wrap(u.SearchAgain))
}

func (u *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validation("all fields are required")
	}

	p, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, types.RegisterResponse{Success: true, Message: "registration successful", UserID: p.PassengerID})
	return nil
}

// Login 登录成功后写入会话 cookie
func (u *User) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validation("email and password are required")
	}

	p, token, err := u.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	u.setSession(c, token, int(u.Config.Jwt.ExpiresTime))
	response.Success(c, types.LoginResponse{Success: true, UserID: p.PassengerID})
	return nil
}

func (u *User) Logout(c *gin.Context) error {
	u.setSession(c, "", -1)
	response.Success(c, types.SuccessResponse{Success: true})
	return nil
}

func (u *User) CheckAuth(c *gin.Context) error {
	uid := context.GetUserID(c)
	response.Success(c, types.CheckAuthResponse{Authenticated: uid != 0, UserID: uid})
	return nil
}

// Searches 最近的搜索记录
func (u *User) Searches(c *gin.Context) error {
	items, err := u.SavedSearchService.Recent(c.Request.Context(), context.GetUserID(c))
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (u *User) SearchAgain(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	redirect, err := u.SavedSearchService.SearchAgain(c.Request.Context(), context.GetUserID(c), id)
	if err != nil {
		return err
	}
	response.Success(c, types.SearchAgainResponse{RedirectURL: redirect})
	return nil
}

func (u *User) Autocomplete(c *gin.Context) error {
	items, err := u.AirportService.Autocomplete(c.Request.Context(), c.Query("query"))
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (u *User) setSession(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", u.Config.App.Production, true)
}

func pathID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.Validation("invalid id %q", c.Param("id"))
	}
	return id, nil
}
