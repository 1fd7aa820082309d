package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserLogout only confirms the request. There is no revocation list, so
// the token stays cryptographically valid until its natural expiry and
// the client is expected to discard it.
func (a *API) UserLogout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
	})
}
