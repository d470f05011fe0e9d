package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health is the liveness check mounted at the root path.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "Server is running smoothly",
		"timestamp": time.Now(),
	})
}
