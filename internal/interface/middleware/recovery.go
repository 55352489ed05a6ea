package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-question-bank/pkg/helpers"
	"github.com/oksasatya/go-question-bank/pkg/response"
)

// Recovery turns a handler panic into a logged 500 JSON response.
func Recovery(logger logrus.FieldLogger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		helpers.LogError(helpers.LoggerFromContext(c.Request.Context(), logger), "handler panic recovered",
			fmt.Errorf("panic: %v", recovered),
			logrus.Fields{"path": c.Request.URL.Path, "method": c.Request.Method})
		response.AbortError(c, http.StatusInternalServerError, "Internal server error")
	})
}
