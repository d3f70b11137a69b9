package repo

import (
	"github.com/rogerio-castellano/faststock/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// Products keep insertion order. IDs start at 1 for every new repository, so
// they reset whenever the process restarts.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// Create assigns the next ID and appends the product to the repository.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// GetAll returns a copy of every product in insertion order.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, &ProductNotFoundError{ID: id}
}

// Delete removes the first product with the given ID.
func (r *InMemoryProductRepository) Delete(id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return &ProductNotFoundError{ID: id}
}

func (r *InMemoryProductRepository) Count() int {
	return len(r.products)
}

// Clear drops every product. The ID counter keeps counting.
func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}
