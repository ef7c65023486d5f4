package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code   int    `json:"code"`
	Msg    string `json:"msg"`
	Marker string `json:"marker,omitempty"`
	Data   any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

// Created writes 201 with the payload.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
	})
}

func FailWith(c *gin.Context, be *BizError) {
	c.JSON(be.Code, Response{
		Code:   be.Code,
		Msg:    be.Msg,
		Marker: be.Marker,
	})
}
