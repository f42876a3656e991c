package service

import (
	"context"
	"errors"

	"distribuidora/internal/apierror"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// validarCosto normalizes a cost to the fixed 2-decimal rule (rounded
// half-up, e.g. 100.005 → 100.01) and rejects anything that is not strictly
// positive after rounding.
func validarCosto(c decimal.Decimal) (decimal.Decimal, error) {
	costo := c.Round(2)
	if !costo.GreaterThan(decimal.Zero) {
		return decimal.Decimal{}, apierror.Validation("El costo debe ser mayor a 0")
	}
	return costo, nil
}

// traducirDuplicado converts a unique-constraint violation into the same
// uniqueness error the pre-check produces, so a writer that races past the
// application check still gets a descriptive 400 instead of a 500.
func traducirDuplicado(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.Uniqueness(msg)
	}
	return err
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode with stub repos).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}
