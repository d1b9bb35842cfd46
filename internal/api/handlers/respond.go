package handlers

import (
	"errors"
	"net/http"
	"strings"

	"avatar-stream-gateway/internal/heygen"
	"avatar-stream-gateway/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError is the single place upstream failures become HTTP responses.
// Classified errors map through heygen.Error.HTTPStatus and keep their
// message; anything unclassified is logged in full and answered with a
// fixed generic 500 body.
func (h *Handlers) respondError(c *gin.Context, op string, err error) {
	var apiErr *heygen.Error
	if errors.As(err, &apiErr) {
		evt := h.Logger.Error()
		if apiErr.ClientCaused() {
			evt = h.Logger.Warn()
		}
		evt.Str("op", op).
			Str("kind", apiErr.Kind.String()).
			Int("upstream_status", apiErr.StatusCode).
			Msg(apiErr.Message)

		c.JSON(apiErr.HTTPStatus(), models.ErrorResponse{
			Message: apiErr.Message,
			Details: apiErr.Details,
		})
		return
	}

	h.Logger.Error().Err(err).Str("op", op).Msg("Unexpected error")
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Message: "Internal server error",
	})
}

// respondInvalid rejects a request that failed local validation, before any
// upstream call was made. Structural failures are 422; upstream-reported
// validation failures go through respondError as 400 instead.
func (h *Handlers) respondInvalid(c *gin.Context, err error) {
	h.Logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Request validation failed")
	c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
		Message: "Validation error",
		Details: validationDetails(err),
	})
}

func validationDetails(err error) map[string]string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"body": err.Error()}
	}
	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[strings.ToLower(fe.Field())] = "failed '" + fe.Tag() + "' constraint"
	}
	return details
}

// sessionIDParam extracts and trims the session id path parameter.
func sessionIDParam(c *gin.Context) (string, bool) {
	sessionID := strings.TrimSpace(c.Param("session_id"))
	return sessionID, sessionID != ""
}
