package web

import (
	"errors"
	"net/http"

	"github.com/Zachkp/portfolio/internal/session"
)

// HTTPStatus returns the status code for an error raised by a handler.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, session.ErrUnknownTab):
		return http.StatusBadRequest
	case errors.Is(err, errUnauthorized):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
