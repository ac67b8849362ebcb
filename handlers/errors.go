package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/myjobmatch/jobfeed/logger"
	"github.com/myjobmatch/jobfeed/models"
)

// errorEnvelope builds the search error body. Source location and stack are
// only filled when debug is set.
func errorEnvelope(err error, withType, debugMode bool, skip int) models.JobsErrorResponse {
	resp := models.JobsErrorResponse{
		Status:  models.StatusError,
		Message: err.Error(),
	}
	if withType {
		resp.ErrorType = fmt.Sprintf("%T", err)
	}
	if debugMode {
		if _, file, line, ok := runtime.Caller(skip + 1); ok {
			resp.File = filepath.Base(file)
			resp.LineNumber = line
		}
		resp.FullTraceback = string(debug.Stack())
	}
	return resp
}

type panicError struct {
	value interface{}
}

func (p *panicError) Error() string {
	return fmt.Sprintf("panic: %v", p.value)
}

// Recovery turns panics into the JSON error envelope.
func Recovery(debugMode bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = &panicError{value: recovered}
		}

		logger.Component("recovery").Error().Err(err).
			Str("path", c.Request.URL.Path).
			Bytes("stack", debug.Stack()).
			Msg("Recovered from panic")

		c.AbortWithStatusJSON(http.StatusInternalServerError, errorEnvelope(err, true, debugMode, 1))
	})
}
