package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	datastore string
}

var healthHandler *HealthHandler

func NewHealthHandler(datastore string) *HealthHandler {
	return &HealthHandler{
		datastore: datastore,
	}
}

func SetupHealthHandler(datastore string) {
	healthHandler = NewHealthHandler(datastore)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "Server is running",
		"datastore": h.datastore,
		"time":      time.Now().Format(time.RFC3339),
	})
}
