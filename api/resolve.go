package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notedeck/notes-api/model"
	"notedeck/notes-api/store"
)

// resolveUser turns the verified token subject into the owning user
// row. Resolution happens fresh on every request, tokens outliving
// their account get a 404 here instead of ghost access.
func (a *API) resolveUser(c *gin.Context) (*model.User, bool) {
	requestID := c.MustGet("requestID").(string)
	email := c.MustGet("userEmail").(string)

	user, err := a.Store.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return nil, false
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to resolve user", zap.Error(err), zap.String("requestID", requestID))
		return nil, false
	}

	return user, true
}
