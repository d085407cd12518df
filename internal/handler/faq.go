package handler

import (
    "errors"
    "log"
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/dpang/faq-service/internal/model"
    "github.com/dpang/faq-service/internal/repository"
    "github.com/dpang/faq-service/internal/response"
)

// Paging defaults and bounds for the list endpoints.
const (
    defaultPage = 1
    defaultSize = 20
    maxSize     = 100
)

// faqBody is the JSON payload shared by create and update. The author is
// never part of the payload; it comes from the authenticated caller.
type faqBody struct {
    Question string `json:"question"`
    Answer   string `json:"answer"`
    Category string `json:"category"`
}

// bindFAQBody binds and validates the request payload, resolving the
// category reference against the closed tag set. Validation happens before
// any persistence call, so an invalid payload never mutates anything.
func bindFAQBody(c echo.Context) (question, answer string, category model.Category, err error) {
    var body faqBody
    if err = c.Bind(&body); err != nil {
        return "", "", "", errors.New("invalid request body")
    }
    question = strings.TrimSpace(body.Question)
    answer = strings.TrimSpace(body.Answer)
    if question == "" {
        return "", "", "", errors.New("question is required")
    }
    if answer == "" {
        return "", "", "", errors.New("answer is required")
    }
    category, err = model.ParseCategory(body.Category)
    if err != nil {
        return "", "", "", err
    }
    return question, answer, category, nil
}

// CreateFAQ handles POST /v1/faqs. The authenticated admin becomes the
// entry's author.
func (h *FAQHandler) CreateFAQ(c echo.Context) error {
    authorID, err := getUserID(c)
    if err != nil {
        return response.Fail(c, http.StatusUnauthorized, "unauthorized")
    }
    question, answer, category, err := bindFAQBody(c)
    if err != nil {
        return response.Fail(c, http.StatusBadRequest, err.Error())
    }

    faq := &model.FAQ{
        Question: question,
        Answer:   answer,
        Category: category,
        AuthorID: authorID,
    }
    if err := h.FAQs.Create(c.Request().Context(), faq); err != nil {
        return response.Fail(c, http.StatusInternalServerError, "could not create faq")
    }
    log.Printf("faq created id=%d category=%s author=%d", faq.ID, faq.Category, authorID)
    return response.OK(c, http.StatusCreated, "faq created", faq)
}

// GetFAQ handles GET /v1/faqs/:id.
func (h *FAQHandler) GetFAQ(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return response.Fail(c, http.StatusBadRequest, "invalid id")
    }
    faq, err := h.FAQs.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrFAQNotFound) {
            return response.Fail(c, http.StatusNotFound, err.Error())
        }
        return response.Fail(c, http.StatusInternalServerError, "db error")
    }
    return response.OK(c, http.StatusOK, "faq retrieved", faq)
}

// ListFAQs handles GET /v1/faqs?page=&size=&category=. Entries come back
// in insertion order with page metadata alongside the slice. The category
// filter is optional; when omitted the listing covers every entry.
func (h *FAQHandler) ListFAQs(c echo.Context) error {
    page, size := pageSpec(c)

    var (
        result *repository.Page
        err    error
    )
    if raw := c.QueryParam("category"); raw != "" {
        category, perr := model.ParseCategory(raw)
        if perr != nil {
            return response.Fail(c, http.StatusBadRequest, perr.Error())
        }
        result, err = h.FAQs.ListByCategory(c.Request().Context(), category, page, size)
    } else {
        result, err = h.FAQs.List(c.Request().Context(), page, size)
    }
    if err != nil {
        return response.Fail(c, http.StatusInternalServerError, "db error")
    }
    log.Printf("faq list page=%d size=%d total=%d", result.Page, result.Size, result.TotalItems)
    return response.OK(c, http.StatusOK, "faqs retrieved", result)
}

// ListFAQsByCategory handles GET /v1/faqs/category/:category. An unknown
// category tag is a client error; an empty result set is not.
func (h *FAQHandler) ListFAQsByCategory(c echo.Context) error {
    category, err := model.ParseCategory(c.Param("category"))
    if err != nil {
        return response.Fail(c, http.StatusBadRequest, err.Error())
    }
    page, size := pageSpec(c)
    result, err := h.FAQs.ListByCategory(c.Request().Context(), category, page, size)
    if err != nil {
        return response.Fail(c, http.StatusInternalServerError, "db error")
    }
    return response.OK(c, http.StatusOK, "faqs retrieved", result)
}

// ListCategories handles GET /v1/faqs/categories and returns the closed
// category set so clients can populate pickers.
func (h *FAQHandler) ListCategories(c echo.Context) error {
    return response.OK(c, http.StatusOK, "categories retrieved", model.Categories())
}

// UpdateFAQ handles PUT /v1/faqs/:id. Content fields are overwritten in
// place; the author and creation timestamp never change. The caller is not
// compared against the original author: write routes are admin-only and
// admins may edit entries they did not write.
func (h *FAQHandler) UpdateFAQ(c echo.Context) error {
    callerID, err := getUserID(c)
    if err != nil {
        return response.Fail(c, http.StatusUnauthorized, "unauthorized")
    }
    id, err := pathID(c)
    if err != nil {
        return response.Fail(c, http.StatusBadRequest, "invalid id")
    }
    question, answer, category, err := bindFAQBody(c)
    if err != nil {
        return response.Fail(c, http.StatusBadRequest, err.Error())
    }

    faq, err := h.FAQs.Update(c.Request().Context(), id, question, answer, category)
    if err != nil {
        if errors.Is(err, repository.ErrFAQNotFound) {
            return response.Fail(c, http.StatusNotFound, err.Error())
        }
        return response.Fail(c, http.StatusInternalServerError, "update failed")
    }
    log.Printf("faq updated id=%d category=%s caller=%d", faq.ID, faq.Category, callerID)
    return response.OK(c, http.StatusOK, "faq updated", faq)
}

// pageSpec reads the page/size query parameters, applying defaults and
// clamping the size.
func pageSpec(c echo.Context) (page, size int) {
    page = defaultPage
    size = defaultSize
    if v := c.QueryParam("page"); v != "" {
        if n, err := strconv.Atoi(v); err == nil && n > 0 {
            page = n
        }
    }
    if v := c.QueryParam("size"); v != "" {
        if n, err := strconv.Atoi(v); err == nil && n > 0 {
            size = n
        }
    }
    if size > maxSize {
        size = maxSize
    }
    return page, size
}
