package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root GET / plaintext greeting, handy as a liveness probe.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Hello from Gin and PostgreSQL")
}
