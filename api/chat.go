package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notedeck/notes-api/service"
)

type chatBody struct {
	Message     string `json:"message"`
	NoteContext string `json:"note_context"`
}

func (a *API) Chat(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	if _, ok := a.resolveUser(c); !ok {
		return
	}

	var data chatBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if strings.TrimSpace(data.Message) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Message is required",
			"requestID": requestID,
		})
		return
	}

	answer, err := a.Assistant.Complete(service.BuildNotePrompt(data.Message, data.NoteContext))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{
			"error":     "Assistant is unavailable right now",
			"requestID": requestID,
		})

		zap.L().Error("Completion request failed", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": answer,
	})
}
