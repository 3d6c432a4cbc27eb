package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail/internal/apperr"
)

func writeError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
