package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON writes data as the response body.
func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// RespondError writes {"error": msg}. Server errors are also logged with
// the request id so they can be matched to the access log.
func RespondError(c *gin.Context, code int, err error) {
	if code >= 500 {
		ErrorLogger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		}).Error(err)
	}
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// RespondMessage writes {"error": message} for client errors that carry a
// fixed user-facing text.
func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}
