package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) UserProfile(c *gin.Context) {
	email := c.MustGet("userEmail").(string)

	c.JSON(http.StatusOK, gin.H{
		"email":   email,
		"message": "Profile data retrieved successfully",
	})
}
