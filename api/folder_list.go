package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) FolderList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	user, ok := a.resolveUser(c)
	if !ok {
		return
	}

	folders, err := a.Store.ListFolders(user.ID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list folders", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"folders": folders,
	})
}
