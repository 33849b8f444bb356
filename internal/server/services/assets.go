// Package services contains server-side orchestration. This file implements
// AssetService, which delegates asset operations to the repository and
// shapes listing results into pages.
package services

import (
	"context"
	"database/sql"
	"math"

	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
	"github.com/dmitrijs2005/assetkeeper/internal/server/repositories/assets"
	"github.com/dmitrijs2005/assetkeeper/internal/server/repositories/repomanager"
)

// ListParams selects one page of assets. Page starts at 1. Bounds are
// enforced by the caller.
type ListParams struct {
	Page     int
	PageSize int
	Search   *string
	Category *string
	Status   *models.AssetStatus
}

// AssetPage is one window of a listing together with its position.
type AssetPage struct {
	Assets     []*models.Asset `json:"assets"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// AssetService is stateless; every call obtains a repository bound to the
// pool and returns repository errors unchanged.
type AssetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewAssetService constructs an AssetService over db.
func NewAssetService(db *sql.DB, m repomanager.RepositoryManager) *AssetService {
	return &AssetService{db: db, repomanager: m}
}

func (s *AssetService) repo() assets.Repository {
	return s.repomanager.Assets(s.db)
}

func (s *AssetService) CreateAsset(ctx context.Context, in models.AssetCreate) (*models.Asset, error) {
	return s.repo().Create(ctx, in)
}

func (s *AssetService) GetAsset(ctx context.Context, id int64) (*models.Asset, error) {
	return s.repo().GetByID(ctx, id)
}

func (s *AssetService) UpdateAsset(ctx context.Context, id int64, in models.AssetUpdate) (*models.Asset, error) {
	return s.repo().Update(ctx, id, in)
}

func (s *AssetService) DeleteAsset(ctx context.Context, id int64) error {
	return s.repo().Delete(ctx, id)
}

func (s *AssetService) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo().ListCategories(ctx)
}

// CheckSerialNumberExists reports whether serial is held by an asset other
// than excludeID.
func (s *AssetService) CheckSerialNumberExists(ctx context.Context, serial string, excludeID *int64) (bool, error) {
	return s.repo().ExistsBySerialNumber(ctx, serial, excludeID)
}

// ListAssets returns page p.Page of the assets matching p.
func (s *AssetService) ListAssets(ctx context.Context, p ListParams) (*AssetPage, error) {
	items, total, err := s.repo().List(ctx, assets.ListFilter{
		Skip:     offset(p.Page, p.PageSize),
		Limit:    p.PageSize,
		Search:   p.Search,
		Category: p.Category,
		Status:   p.Status,
	})
	if err != nil {
		return nil, err
	}

	return &AssetPage{
		Assets:     items,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: totalPages(total, p.PageSize),
	}, nil
}

// offset is (page-1)*pageSize. A product that does not fit in an int
// saturates to math.MaxInt, which still lies past every stored row.
func offset(page, pageSize int) int {
	if page <= 1 || pageSize <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}

// totalPages is ceil(total/pageSize), except that an empty result is one page.
func totalPages(total, pageSize int) int {
	if total == 0 || pageSize <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}
