package handler // handler defines the HTTP handlers of the FAQ service

import (
    "errors"  // errors provides the sentinel used by getUserID
    "strconv" // strconv converts string identifiers to numeric types

    "github.com/labstack/echo/v4"

    "github.com/dpang/faq-service/internal/repository"
)

// FAQHandler bundles the repositories the FAQ endpoints need.
type FAQHandler struct {
    FAQs *repository.FAQRepo // FAQ entry persistence
}

// NewFAQHandler constructs an FAQHandler and panics if the repository is
// nil, so wiring mistakes fail at startup rather than on the first request.
func NewFAQHandler(faqs *repository.FAQRepo) *FAQHandler {
    if faqs == nil {
        panic("nil repository passed to NewFAQHandler")
    }
    return &FAQHandler{FAQs: faqs}
}

// getUserID extracts the caller identity that the JWT middleware stored in
// the context and converts it to int64. JSON numbers arrive as float64,
// so several representations must be accepted.
func getUserID(c echo.Context) (int64, error) {
    switch t := c.Get("user_id").(type) {
    case int64:
        return t, nil
    case int:
        return int64(t), nil
    case uint64:
        return int64(t), nil
    case float64:
        return int64(t), nil
    case string:
        if n, err := strconv.ParseInt(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}

// pathID parses the :id route parameter. Any syntactically valid integer
// is accepted here; ids that do not resolve to a row (including negative
// ones, which are never assigned) surface as not-found from the
// repository.
func pathID(c echo.Context) (int64, error) {
    return strconv.ParseInt(c.Param("id"), 10, 64)
}
