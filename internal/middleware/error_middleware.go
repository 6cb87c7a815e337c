package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeforms/internal/app/models/dto"
	"github.com/yigit/collegeforms/internal/pkg/apperrors"
	"github.com/yigit/collegeforms/internal/pkg/dberrors"
)

// HandleAPIError renders a data-layer error as a reported error payload.
// Data-layer failures, including not-found, keep HTTP 200 so that only the
// payload shape differs from a success. Malformed input is the exception
// and is answered with 400.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError

	switch {
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &custom):
		c.JSON(http.StatusOK, dto.ErrorResponse{Error: custom.Error()})
	default:
		Logger(c).Error().Err(err).Msg("Storage operation failed")
		c.JSON(http.StatusOK, dto.ErrorResponse{Error: dberrors.Describe(err)})
	}
}
