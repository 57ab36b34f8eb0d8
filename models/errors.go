package models

import (
	"errors"
	"fmt"
)

// Domain error kinds. Controllers map these onto HTTP statuses; services wrap
// them with field context via fmt.Errorf("...: %w", ...).
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidMealType     = errors.New("invalid meal type")
	ErrInvalidCatalogEntry = errors.New("invalid catalog entry")
	ErrFoodInUse           = errors.New("food item is referenced by logged meals")
	ErrStorage             = errors.New("storage failure")
)

// Storage stages, so a caller can tell a failed ledger mutation apart from a
// failed aggregate update even though both roll back together.
const (
	StageLedger    = "ledger"
	StageAggregate = "aggregate"
	StageCatalog   = "catalog"
)

// StorageError wraps a persistence failure with the stage it occurred in.
type StorageError struct {
	Stage string
	Op    string
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is reports ErrStorage for any StorageError so errors.Is(err, ErrStorage)
// matches regardless of stage.
func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// NewStorageError tags err with a stage and operation name.
func NewStorageError(stage, op string, err error) error {
	return &StorageError{Stage: stage, Op: op, Err: err}
}
