// Package assets implements asset persistence on PostgreSQL.
package assets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/dbx"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	tableAssets = "assets"

	constraintSerialNumber  = "uq_assets_serial_number"
	constraintPurchasePrice = "ck_assets_purchase_price"
	constraintStatus        = "ck_assets_status"
)

var assetColumns = []string{
	"id", "name", "description", "category", "serial_number",
	"purchase_date", "purchase_price", "status", "created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository binds a repository to db. When db is a *sql.DB each
// write runs in its own transaction; when it is a *sql.Tx writes join it.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (*models.Asset, error) {
	a := &models.Asset{}
	err := row.Scan(
		&a.ID, &a.Name, &a.Description, &a.Category, &a.SerialNumber,
		&a.PurchaseDate, &a.PurchasePrice, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func returning() string {
	return "RETURNING " + strings.Join(assetColumns, ", ")
}

// classify turns constraint violations into domain errors and leaves
// everything else for the caller to wrap.
func classify(err error, serial string) error {
	if err == nil {
		return nil
	}
	if dbx.IsUniqueViolation(err, constraintSerialNumber) {
		return common.DuplicateSerialNumberError{SerialNumber: serial}
	}
	if dbx.IsCheckViolation(err) {
		var pgErr *pgconn.PgError
		errors.As(err, &pgErr)
		ve := common.NewValidationError("Invalid input")
		switch pgErr.ConstraintName {
		case constraintPurchasePrice:
			ve.WithDetail("purchase_price", "must be greater than 0")
		case constraintStatus:
			ve.WithDetail("status", "must be one of: active, inactive, maintenance, disposed")
		}
		return ve
	}
	return err
}

func (r *PostgresRepository) Create(ctx context.Context, in models.AssetCreate) (*models.Asset, error) {
	var created *models.Asset

	err := dbx.RunInTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		exists, err := existsBySerialNumber(ctx, tx, in.SerialNumber, nil)
		if err != nil {
			return err
		}
		if exists {
			return common.DuplicateSerialNumberError{SerialNumber: in.SerialNumber}
		}

		query, args, err := psql.Insert(tableAssets).
			Columns("name", "description", "category", "serial_number", "purchase_date", "purchase_price", "status").
			Values(in.Name, in.Description, in.Category, in.SerialNumber, in.PurchaseDate, in.PurchasePrice, in.Status).
			Suffix(returning()).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}

		created, err = scanAsset(tx.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		return nil, common.NewStorageError("failed to create asset", classify(err, in.SerialNumber))
	}

	return created, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Asset, error) {
	a, err := getByID(ctx, r.db, id, false)
	if err != nil {
		return nil, common.NewStorageError("failed to retrieve asset", err)
	}
	return a, nil
}

func getByID(ctx context.Context, db dbx.DBTX, id int64, forUpdate bool) (*models.Asset, error) {
	b := psql.Select(assetColumns...).From(tableAssets).Where(sq.Eq{"id": id})
	if forUpdate {
		b = b.Suffix("FOR UPDATE")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	a, err := scanAsset(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NotFoundError{ID: id}
		}
		return nil, err
	}
	return a, nil
}

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func applyFilter(b sq.SelectBuilder, f ListFilter) sq.SelectBuilder {
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + escapeLike(*f.Search) + "%"
		b = b.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
			sq.ILike{"serial_number": pattern},
		})
	}
	if f.Category != nil {
		b = b.Where(sq.Eq{"category": *f.Category})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"status": string(*f.Status)})
	}
	return b
}

// listTxOptions gives the count and the window one snapshot.
var listTxOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// List returns one window of matching assets, newest first, together with
// the number of matches before windowing. Both are read from the same
// snapshot.
func (r *PostgresRepository) List(ctx context.Context, f ListFilter) ([]*models.Asset, int, error) {
	countQuery, countArgs, err := applyFilter(psql.Select("COUNT(*)").From(tableAssets), f).ToSql()
	if err != nil {
		return nil, 0, common.NewStorageError("failed to retrieve assets", err)
	}

	b := applyFilter(psql.Select(assetColumns...).From(tableAssets), f).
		OrderBy("created_at DESC", "id DESC")
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Skip > 0 {
		b = b.Offset(uint64(f.Skip))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, common.NewStorageError("failed to retrieve assets", err)
	}

	var (
		total  int
		result = []*models.Asset{}
	)
	err = dbx.RunInTx(ctx, r.db, listTxOptions, func(ctx context.Context, tx dbx.DBTX) error {
		if err := tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
			return err
		}

		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			a, err := scanAsset(rows)
			if err != nil {
				return err
			}
			result = append(result, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, common.NewStorageError("failed to retrieve assets", err)
	}

	return result, total, nil
}

// Update applies the fields present in in to the asset and refreshes
// updated_at, all in one transaction.
func (r *PostgresRepository) Update(ctx context.Context, id int64, in models.AssetUpdate) (*models.Asset, error) {
	var updated *models.Asset
	serial, _ := in.SerialNumber.Get()

	err := dbx.RunInTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		current, err := getByID(ctx, tx, id, true)
		if err != nil {
			return err
		}

		if in.SerialNumber.IsSet() && serial != current.SerialNumber {
			exists, err := existsBySerialNumber(ctx, tx, serial, &id)
			if err != nil {
				return err
			}
			if exists {
				return common.DuplicateSerialNumberError{SerialNumber: serial}
			}
		}

		b := psql.Update(tableAssets).Set("updated_at", sq.Expr("NOW()"))
		if v, ok := in.Name.Get(); ok {
			b = b.Set("name", v)
		}
		if in.Description.IsSet() {
			b = b.Set("description", in.Description.Ptr())
		}
		if in.Category.IsSet() {
			b = b.Set("category", in.Category.Ptr())
		}
		if v, ok := in.SerialNumber.Get(); ok {
			b = b.Set("serial_number", v)
		}
		if v, ok := in.PurchaseDate.Get(); ok {
			b = b.Set("purchase_date", v)
		}
		if v, ok := in.PurchasePrice.Get(); ok {
			b = b.Set("purchase_price", v)
		}
		if v, ok := in.Status.Get(); ok {
			b = b.Set("status", v)
		}

		query, args, err := b.Where(sq.Eq{"id": id}).Suffix(returning()).ToSql()
		if err != nil {
			return fmt.Errorf("build update: %w", err)
		}

		updated, err = scanAsset(tx.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return common.NotFoundError{ID: id}
		}
		return err
	})
	if err != nil {
		return nil, common.NewStorageError("failed to update asset", classify(err, serial))
	}

	return updated, nil
}

// Delete removes the asset permanently.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	err := dbx.RunInTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query, args, err := psql.Delete(tableAssets).Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete: %w", err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return common.NotFoundError{ID: id}
		}
		return nil
	})
	return common.NewStorageError("failed to delete asset", err)
}

// ListCategories returns the distinct non-null categories in lexical order.
func (r *PostgresRepository) ListCategories(ctx context.Context) ([]string, error) {
	query, args, err := psql.Select("category").Distinct().
		From(tableAssets).
		Where(sq.NotEq{"category": nil}).
		OrderBy("category").
		ToSql()
	if err != nil {
		return nil, common.NewStorageError("failed to retrieve categories", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewStorageError("failed to retrieve categories", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, common.NewStorageError("failed to retrieve categories", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewStorageError("failed to retrieve categories", err)
	}

	return categories, nil
}

// ExistsBySerialNumber reports whether an asset other than excludeID holds
// serial. The match is exact and case-sensitive.
func (r *PostgresRepository) ExistsBySerialNumber(ctx context.Context, serial string, excludeID *int64) (bool, error) {
	exists, err := existsBySerialNumber(ctx, r.db, serial, excludeID)
	if err != nil {
		return false, common.NewStorageError("failed to check serial number existence", err)
	}
	return exists, nil
}

func existsBySerialNumber(ctx context.Context, db dbx.DBTX, serial string, excludeID *int64) (bool, error) {
	b := psql.Select("1").From(tableAssets).Where(sq.Eq{"serial_number": serial})
	if excludeID != nil {
		b = b.Where(sq.NotEq{"id": *excludeID})
	}
	query, args, err := b.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists: %w", err)
	}

	var exists bool
	if err := db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
