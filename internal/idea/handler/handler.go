package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/siteideas/website-ideas/internal/idea"
	"github.com/siteideas/website-ideas/internal/idea/service"
)

const (
	MsgCreated       = "Website idea created successfully"
	MsgListed        = "Website ideas retrieved successfully"
	MsgRetrieved     = "Website idea retrieved successfully"
	MsgInvalidBody   = "Invalid request body"
	MsgInternalError = "Internal server error"
)

// Envelope wraps every response of the website idea API.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

type createRequest struct {
	Idea *string `json:"idea"`
}

// RegisterIdeaRoutes mounts the website idea endpoints on r. Callers
// usually pass the "/api" group.
func RegisterIdeaRoutes(r gin.IRouter, svc service.Service) {
	g := r.Group("/website-ideas")

	g.POST("", func(c *gin.Context) {
		var req createRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, Envelope{Message: MsgInvalidBody})
			return
		}
		if req.Idea == nil {
			c.JSON(http.StatusBadRequest, Envelope{Message: idea.MsgIdeaRequired})
			return
		}
		rec, err := svc.Create(c.Request.Context(), *req.Idea)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, Envelope{Success: true, Data: rec, Message: MsgCreated})
	})

	g.GET("", func(c *gin.Context) {
		list, err := svc.FindAll(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, Envelope{Success: true, Data: list, Message: MsgListed})
	})

	g.GET("/:id", func(c *gin.Context) {
		rec, err := svc.FindOne(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, Envelope{Success: true, Data: rec, Message: MsgRetrieved})
	})
}

func fail(c *gin.Context, err error) {
	var e *idea.Error
	if !errors.As(err, &e) {
		c.JSON(http.StatusInternalServerError, Envelope{Message: MsgInternalError})
		return
	}
	status := http.StatusInternalServerError
	switch e.Kind {
	case idea.KindValidation:
		status = http.StatusBadRequest
	case idea.KindNotFound:
		status = http.StatusNotFound
	}
	c.JSON(status, Envelope{Message: e.Message})
}
