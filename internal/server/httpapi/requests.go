package httpapi

import (
	"strings"

	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
	"github.com/dmitrijs2005/assetkeeper/internal/server/services"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// ListAssetsRequest carries the query string of GET /assets.
type ListAssetsRequest struct {
	Page     int    `query:"page" validate:"gte=1"`
	PageSize int    `query:"page_size" validate:"gte=1,lte=100"`
	Search   string `query:"search"`
	Category string `query:"category"`
	Status   string `query:"status" validate:"omitempty,oneof=active inactive maintenance disposed"`
}

func newListAssetsRequest() ListAssetsRequest {
	return ListAssetsRequest{Page: defaultPage, PageSize: defaultPageSize}
}

func (r ListAssetsRequest) params() services.ListParams {
	p := services.ListParams{Page: r.Page, PageSize: r.PageSize}
	if s := strings.TrimSpace(r.Search); s != "" {
		p.Search = &s
	}
	if r.Category != "" {
		c := r.Category
		p.Category = &c
	}
	if r.Status != "" {
		st := models.AssetStatus(r.Status)
		p.Status = &st
	}
	return p
}
