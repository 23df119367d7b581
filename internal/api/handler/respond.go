package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// successEnvelope wraps every 2xx payload.
type successEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Payload any    `json:"payload"`
}

func respondOK(c echo.Context, message string, payload any) error {
	return c.JSON(http.StatusOK, successEnvelope{Success: true, Message: message, Payload: payload})
}

func respondCreated(c echo.Context, message string, payload any) error {
	return c.JSON(http.StatusCreated, successEnvelope{Success: true, Message: message, Payload: payload})
}
