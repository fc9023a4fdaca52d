package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medianet/internal/utils/platformerrors"
)

// ErrorResponse is the JSON error body returned by every API route.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleError translates typed domain errors into HTTP responses.
func HandleError(c *gin.Context, err error, fallback string) {
	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		message := platformErr.Message
		if message == "" {
			message = fallback
		}
		c.AbortWithStatusJSON(
			platformerrors.ErrorTypeToHTTPStatus(platformErr.GetErrorType()),
			ErrorResponse{Error: message},
		)
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
}
