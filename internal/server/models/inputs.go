package models

import (
	"errors"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/shopspring/decimal"
)

// Validation rules shared by create and update inputs.
const (
	nameRule     = "min=1,max=255"
	categoryRule = "min=1,max=100"
	serialRule   = "min=1,max=100"
	statusRule   = "oneof=active inactive maintenance disposed"
)

// maxPrice is the largest value a NUMERIC(10,2) column holds.
var maxPrice = decimal.RequireFromString("99999999.99")

// checkPrice enforces 0 < d <= maxPrice on the exact decimal value.
func checkPrice(ve *common.ValidationError, field string, d decimal.Decimal) {
	switch {
	case d.Sign() <= 0:
		ve.WithDetail(field, "must be greater than 0")
	case d.GreaterThan(maxPrice):
		ve.WithDetail(field, "must be less than or equal to "+maxPrice.StringFixed(2))
	}
}

// AssetCreate is the input of a create operation.
type AssetCreate struct {
	Name          string          `json:"name" validate:"required,min=1,max=255"`
	Description   *string         `json:"description"`
	Category      *string         `json:"category" validate:"omitnil,min=1,max=100"`
	SerialNumber  string          `json:"serial_number" validate:"required,min=1,max=100"`
	PurchaseDate  Date            `json:"purchase_date" validate:"required"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Status        AssetStatus     `json:"status" validate:"required,oneof=active inactive maintenance disposed"`
}

// Validate returns a *common.ValidationError describing every invalid field.
func (in AssetCreate) Validate() error {
	ve := common.NewValidationError("Invalid input")
	if err := ValidateStruct(in); err != nil {
		if !errors.As(err, &ve) {
			return err
		}
	}
	checkPrice(ve, "purchase_price", in.PurchasePrice)

	if len(ve.Details) > 0 {
		return ve
	}
	return nil
}

// AssetUpdate is the input of a partial update. Absent fields are left
// untouched. An explicit null clears Description or Category and is rejected
// for every other field.
type AssetUpdate struct {
	Name          Optional[string]          `json:"name"`
	Description   Optional[string]          `json:"description"`
	Category      Optional[string]          `json:"category"`
	SerialNumber  Optional[string]          `json:"serial_number"`
	PurchaseDate  Optional[Date]            `json:"purchase_date"`
	PurchasePrice Optional[decimal.Decimal] `json:"purchase_price"`
	Status        Optional[AssetStatus]     `json:"status"`
}

// Empty reports whether no field is present.
func (in AssetUpdate) Empty() bool {
	return !in.Name.IsSet() && !in.Description.IsSet() && !in.Category.IsSet() &&
		!in.SerialNumber.IsSet() && !in.PurchaseDate.IsSet() && !in.PurchasePrice.IsSet() &&
		!in.Status.IsSet()
}

// Validate returns a *common.ValidationError describing every invalid field.
func (in AssetUpdate) Validate() error {
	ve := common.NewValidationError("Invalid input")

	notNull := func(field string, null bool) bool {
		if null {
			ve.WithDetail(field, "may not be null")
			return false
		}
		return true
	}

	if notNull("name", in.Name.IsNull()) {
		if v, ok := in.Name.Get(); ok {
			checkVar(ve, "name", v, nameRule)
		}
	}
	if v, ok := in.Category.Get(); ok {
		checkVar(ve, "category", v, categoryRule)
	}
	if notNull("serial_number", in.SerialNumber.IsNull()) {
		if v, ok := in.SerialNumber.Get(); ok {
			checkVar(ve, "serial_number", v, serialRule)
		}
	}
	if notNull("purchase_date", in.PurchaseDate.IsNull()) {
		if v, ok := in.PurchaseDate.Get(); ok {
			checkVar(ve, "purchase_date", v, "required")
		}
	}
	if notNull("purchase_price", in.PurchasePrice.IsNull()) {
		if v, ok := in.PurchasePrice.Get(); ok {
			checkPrice(ve, "purchase_price", v)
		}
	}
	if notNull("status", in.Status.IsNull()) {
		if v, ok := in.Status.Get(); ok {
			checkVar(ve, "status", v, statusRule)
		}
	}

	if len(ve.Details) > 0 {
		return ve
	}
	return nil
}
