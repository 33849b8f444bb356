package assets

import (
	"context"

	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

// ListFilter selects and windows the assets returned by List. Nil filters
// are not applied.
type ListFilter struct {
	Skip     int
	Limit    int
	Search   *string
	Category *string
	Status   *models.AssetStatus
}

// Repository is the persistence boundary for assets.
type Repository interface {
	Create(ctx context.Context, in models.AssetCreate) (*models.Asset, error)
	GetByID(ctx context.Context, id int64) (*models.Asset, error)
	List(ctx context.Context, f ListFilter) ([]*models.Asset, int, error)
	Update(ctx context.Context, id int64, in models.AssetUpdate) (*models.Asset, error)
	Delete(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]string, error)
	ExistsBySerialNumber(ctx context.Context, serial string, excludeID *int64) (bool, error)
}
