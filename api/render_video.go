package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notedeck/notes-api/service"
)

// Field names mirror what the frontend already sends
type renderVideoBody struct {
	ManimCode string `json:"manimCode"`
	FileName  string `json:"fileName"`
	Topic     string `json:"topic"`
}

func (a *API) RenderVideo(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	if _, ok := a.resolveUser(c); !ok {
		return
	}

	var data renderVideoBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if strings.TrimSpace(data.ManimCode) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No renderer script provided",
			"requestID": requestID,
		})
		return
	}

	path, err := service.RenderVideo(data.ManimCode, data.FileName)
	if err != nil {
		if errors.Is(err, service.ErrRenderTimeout) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Video rendering timed out",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to render video",
			"requestID": requestID,
		})

		zap.L().Error("Rendering failed", zap.Error(err), zap.String("requestID", requestID), zap.String("topic", data.Topic))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Video rendered successfully",
		"video_path": path,
		"topic":      data.Topic,
	})
}
