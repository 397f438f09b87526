package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

var errBadID = errors.New("invalid identifier")

// pathID parses the :id path segment. Identifiers are positive integers;
// anything else is indistinguishable from a record that does not exist, so
// callers map the error to their entity's not-found response.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, errBadID
	}
	return id, nil
}
