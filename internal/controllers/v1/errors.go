package v1

import (
	"errors"
	"net/http"

	"github.com/Malrhis/Bills-handling-2/internal/models"
)

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Import errors
var (
	errBillMonthNotSet = errors.New("the billMonth query parameter must be set")
	errBodyEmpty       = errors.New("you must send the pasted table data in the request body")
)
