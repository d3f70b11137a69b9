package repo

import "github.com/rogerio-castellano/faststock/internal/models"

// ProductRepository defines the interface for product data operations.
// Products are keyed by the ID assigned on Create.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Delete(id int) error
	Count() int
	Clear()
}
