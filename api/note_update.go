package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notedeck/notes-api/store"
)

type noteUpdateBody struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (a *API) NoteUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	user, ok := a.resolveUser(c)
	if !ok {
		return
	}

	noteID := c.Param("id")

	var data noteUpdateBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Title == nil && data.Content == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Nothing to update",
			"requestID": requestID,
		})
		return
	}

	err := a.Store.UpdateNote(user.ID, noteID, data.Title, data.Content)
	if err != nil {
		// Foreign notes look exactly like missing ones
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Note not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Note updated successfully",
	})
}
