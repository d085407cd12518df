package router // package router registers the HTTP routes of the FAQ service

import (
    "github.com/labstack/echo/v4"

    "github.com/dpang/faq-service/internal/handler"
    "github.com/dpang/faq-service/internal/middleware"
    "github.com/dpang/faq-service/internal/model"
)

// RegisterRoutes registers routes that require no authentication.
// Currently that is only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints. Register, login,
// refresh and logout need no existing session; /v1/auth/me sits behind the
// JWT middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    g := e.Group("/v1/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    g.POST("/refresh", a.Refresh) // rotates the refresh token
    g.POST("/logout", a.Logout)   // revokes the presented refresh token

    me := e.Group("/v1/auth")
    me.Use(middleware.JWTAuth(jwtSecret))
    me.GET("/me", a.Me)
}

// RegisterFAQ registers the FAQ endpoints in two tiers. Read endpoints are
// open to every authenticated role; write endpoints (create, update,
// delete, bulk delete) are restricted to admins. The handlers themselves
// never check roles — this is the only gate.
func RegisterFAQ(e *echo.Echo, h *handler.FAQHandler, jwtSecret string) {
    read := e.Group("/v1/faqs")
    read.Use(middleware.JWTAuth(jwtSecret))
    read.Use(middleware.RequireRole(model.RoleUser, model.RoleAdmin, model.RoleSuperAdmin))
    read.GET("", h.ListFAQs)
    read.GET("/categories", h.ListCategories)
    read.GET("/category/:category", h.ListFAQsByCategory)
    read.GET("/:id", h.GetFAQ)

    write := e.Group("/v1/faqs")
    write.Use(middleware.JWTAuth(jwtSecret))
    write.Use(middleware.RequireRole(model.RoleAdmin, model.RoleSuperAdmin))
    write.POST("", h.CreateFAQ)
    write.PUT("/:id", h.UpdateFAQ)
    write.DELETE("/:id", h.DeleteFAQ)
    write.DELETE("", h.DeleteFAQs) // bulk delete, ids in body
}
