// Package response defines the JSON envelopes every endpoint replies with.
// Successful responses carry a status code, a human-readable message and an
// optional data payload. Error responses additionally carry a timestamp and
// the failing request path so clients and log scrapers can correlate
// failures.
package response

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
)

// Success is the envelope for 2xx responses.
type Success struct {
    Status  int    `json:"status"`
    Message string `json:"message"`
    Data    any    `json:"data,omitempty"`
}

// Error is the envelope for 4xx/5xx responses.
type Error struct {
    Timestamp time.Time `json:"timestamp"`
    Status    int       `json:"status"`
    Error     string    `json:"error"`
    Message   string    `json:"message"`
    Path      string    `json:"path"`
}

// OK writes a success envelope with the given status code, message and
// payload. Pass nil data for message-only responses such as deletes.
func OK(c echo.Context, status int, message string, data any) error {
    return c.JSON(status, Success{Status: status, Message: message, Data: data})
}

// Fail writes an error envelope. The error field is the canonical status
// text; the message explains the specific failure.
func Fail(c echo.Context, status int, message string) error {
    return c.JSON(status, Error{
        Timestamp: time.Now().UTC(),
        Status:    status,
        Error:     http.StatusText(status),
        Message:   message,
        Path:      c.Request().URL.Path,
    })
}
