package httpapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (s *HTTPServer) newRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(newRequestLogger(s.logger))
	e.Use(middleware.Recover())

	if len(s.opts.AllowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     s.opts.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{echo.HeaderAccept, echo.HeaderContentType, echo.HeaderAuthorization},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	e.GET("/", s.rootHandler)
	e.GET("/health", s.healthHandler)

	s.registerAssetRoutes(e.Group("/assets"))
	s.registerAssetRoutes(e.Group("/api/assets"))

	return e
}

func (s *HTTPServer) registerAssetRoutes(g *echo.Group) {
	g.GET("", s.listAssets)
	g.POST("", s.createAsset)
	g.GET("/categories", s.listCategories)
	g.GET("/statuses", s.listStatuses)
	g.GET("/:id", s.getAsset)
	g.PUT("/:id", s.updateAsset)
	g.DELETE("/:id", s.deleteAsset)
}
