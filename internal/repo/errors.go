package repo

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ProductNotFoundError carries the key that had no match. It matches
// ErrProductNotFound under errors.Is.
type ProductNotFoundError struct {
	ID int
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}
