package delivery

import (
	"errors"
	"net/http"

	"products_service/internal/domain"
	"products_service/pkg/db"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

// failWith writes err under prefix, hiding the detail of unclassified errors.
func failWith(c *gin.Context, prefix string, err error) int {
	statusCode := mapErrorToStatus(err)
	if statusCode == http.StatusInternalServerError {
		ErrorResponse(c, statusCode, prefix+": internal server error")
	} else {
		ErrorResponse(c, statusCode, prefix+": "+err.Error())
	}
	return statusCode
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPageOutOfRange):
		return http.StatusBadRequest
	case db.IsUniqueViolation(err):
		return http.StatusConflict
	case db.IsIntegrityViolation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
