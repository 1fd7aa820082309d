package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteList returns the notes in the folder named by the folder_id query
// parameter. Without the parameter it returns root-level notes only,
// not every note the user owns.
func (a *API) NoteList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	user, ok := a.resolveUser(c)
	if !ok {
		return
	}

	var folderID *string
	if v := c.Query("folder_id"); v != "" {
		folderID = &v
	}

	notes, err := a.Store.ListNotes(user.ID, folderID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list notes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notes": notes,
	})
}
