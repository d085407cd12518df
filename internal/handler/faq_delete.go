package handler

import (
    "errors"
    "log"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/dpang/faq-service/internal/repository"
    "github.com/dpang/faq-service/internal/response"
)

// DeleteFAQ handles DELETE /v1/faqs/:id.
func (h *FAQHandler) DeleteFAQ(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return response.Fail(c, http.StatusBadRequest, "invalid id")
    }
    if err := h.FAQs.Delete(c.Request().Context(), id); err != nil {
        if errors.Is(err, repository.ErrFAQNotFound) {
            return response.Fail(c, http.StatusNotFound, err.Error())
        }
        return response.Fail(c, http.StatusInternalServerError, "delete failed")
    }
    log.Printf("faq deleted id=%d", id)
    return response.OK(c, http.StatusOK, "faq deleted", nil)
}

// DeleteFAQs handles DELETE /v1/faqs with a body listing ids. Every id
// must exist or nothing is deleted; the error cites the first missing id.
func (h *FAQHandler) DeleteFAQs(c echo.Context) error {
    var body struct {
        IDs []int64 `json:"ids"`
    }
    if err := c.Bind(&body); err != nil {
        return response.Fail(c, http.StatusBadRequest, "invalid request body")
    }
    if len(body.IDs) == 0 {
        return response.Fail(c, http.StatusBadRequest, "ids is required")
    }
    if err := h.FAQs.DeleteMany(c.Request().Context(), body.IDs); err != nil {
        if errors.Is(err, repository.ErrFAQNotFound) {
            return response.Fail(c, http.StatusNotFound, err.Error())
        }
        return response.Fail(c, http.StatusInternalServerError, "delete failed")
    }
    log.Printf("faqs deleted ids=%v", body.IDs)
    return response.OK(c, http.StatusOK, "faqs deleted", nil)
}
