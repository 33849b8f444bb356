package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
	"github.com/labstack/echo/v4"
)

var binder = &echo.DefaultBinder{}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, common.NewValidationError("Invalid input").WithDetail("id", "must be an integer")
	}
	return id, nil
}

// bindError turns a binder failure for source ("query" or "body") into a
// ValidationError so malformed input always renders as 422.
func bindError(source string, err error) error {
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if m, ok := he.Message.(string); ok {
			msg = m
		} else if he.Internal != nil {
			msg = he.Internal.Error()
		}
	}
	return common.NewValidationError("Invalid input").WithDetail(source, msg)
}

// bindBody decodes the request body into dst. Unlike echo's BindBody it
// rejects a request that carries no body at all; an explicit {} is accepted.
func bindBody(c echo.Context, dst any) error {
	if c.Request().ContentLength == 0 {
		return common.NewValidationError("Invalid input").WithDetail("body", "field required")
	}
	if err := binder.BindBody(c, dst); err != nil {
		return bindError("body", err)
	}
	return nil
}

func (s *HTTPServer) rootHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Asset Management API"})
}

func (s *HTTPServer) healthHandler(c echo.Context) error {
	if s.db == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	}
	if err := s.db.PingContext(c.Request().Context()); err != nil {
		s.logger.Warn(c.Request().Context(), "database ping failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "database": "down"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy", "database": "up"})
}

func (s *HTTPServer) listAssets(c echo.Context) error {
	req := newListAssetsRequest()
	if err := binder.BindQueryParams(c, &req); err != nil {
		return bindError("query", err)
	}
	if err := models.ValidateStruct(req); err != nil {
		return err
	}

	page, err := s.assets.ListAssets(c.Request().Context(), req.params())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (s *HTTPServer) listCategories(c echo.Context) error {
	categories, err := s.assets.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (s *HTTPServer) listStatuses(c echo.Context) error {
	return c.JSON(http.StatusOK, models.AllStatuses())
}

func (s *HTTPServer) getAsset(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	asset, err := s.assets.GetAsset(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, asset)
}

func (s *HTTPServer) createAsset(c echo.Context) error {
	var in models.AssetCreate
	if err := bindBody(c, &in); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}

	asset, err := s.assets.CreateAsset(c.Request().Context(), in)
	if err != nil {
		return err
	}
	s.logger.Info(c.Request().Context(), "asset created", "id", asset.ID, "serial_number", asset.SerialNumber)
	return c.JSON(http.StatusCreated, asset)
}

func (s *HTTPServer) updateAsset(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in models.AssetUpdate
	if err := bindBody(c, &in); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}

	asset, err := s.assets.UpdateAsset(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, asset)
}

func (s *HTTPServer) deleteAsset(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.assets.DeleteAsset(c.Request().Context(), id); err != nil {
		return err
	}
	s.logger.Info(c.Request().Context(), "asset deleted", "id", id)
	return c.NoContent(http.StatusNoContent)
}
