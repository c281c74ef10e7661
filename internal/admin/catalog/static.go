package catalog

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// StaticService implements Service over an in-memory catalog seeded from the
// bundled dataset. Reads serve the public storefront when no backend API is
// configured; writes mutate the in-memory copy only and vanish on restart.
type StaticService struct {
	mu         sync.RWMutex
	products   []Product
	categories []Category
	nextID     int64
	now        func() time.Time
}

// NewStaticService seeds a StaticService with the provided collections.
func NewStaticService(products []Product, categories []Category) *StaticService {
	svc := &StaticService{
		products:   append([]Product(nil), products...),
		categories: append([]Category(nil), categories...),
		nextID:     1,
		now:        time.Now,
	}
	byName := make(map[string]Key, len(svc.categories))
	for _, c := range svc.categories {
		byName[c.Name] = c.ID
		if id, err := strconv.ParseInt(string(c.ID), 10, 64); err == nil && id >= svc.nextID {
			svc.nextID = id + 1
		}
	}
	for i := range svc.products {
		p := &svc.products[i]
		// Seed data may carry the category as a bare name.
		if p.CategoryID.IsZero() && p.Category != "" {
			p.CategoryID = byName[p.Category]
		}
		if id, err := strconv.ParseInt(string(p.ID), 10, 64); err == nil && id >= svc.nextID {
			svc.nextID = id + 1
		}
	}
	return svc
}

// Products returns a copy of the product collection.
func (s *StaticService) Products(ctx context.Context, token string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.products...), nil
}

// Product returns the product with the given id.
func (s *StaticService) Product(ctx context.Context, token string, id Key) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: producto %s", ErrNotFound, id)
}

// CreateProduct appends a new product with a generated identifier.
func (s *StaticService) CreateProduct(ctx context.Context, token string, input ProductInput) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	product := Product{
		ID:          s.allocateID(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
		Category:    s.categoryName(input.CategoryID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.products = append(s.products, product)
	return &product, nil
}

// UpdateProduct replaces the mutable fields of an existing product.
func (s *StaticService) UpdateProduct(ctx context.Context, token string, id Key, input ProductInput) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		p.Name = input.Name
		p.Description = input.Description
		p.Price = input.Price
		p.Stock = input.Stock
		p.CategoryID = input.CategoryID
		p.Category = s.categoryName(input.CategoryID)
		p.UpdatedAt = s.now().UTC()
		found := *p
		return &found, nil
	}
	return nil, fmt.Errorf("%w: producto %s", ErrNotFound, id)
}

// DeleteProduct removes a product.
func (s *StaticService) DeleteProduct(ctx context.Context, token string, id Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: producto %s", ErrNotFound, id)
}

// Categories returns a copy of the category collection.
func (s *StaticService) Categories(ctx context.Context, token string) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Category(nil), s.categories...), nil
}

// Category returns the category with the given id.
func (s *StaticService) Category(ctx context.Context, token string, id Key) (*Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: categoría %s", ErrNotFound, id)
}

// CreateCategory appends a new category with a generated identifier.
func (s *StaticService) CreateCategory(ctx context.Context, token string, input CategoryInput) (*Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := Category{
		ID:          s.allocateID(),
		Name:        input.Name,
		Description: input.Description,
	}
	s.categories = append(s.categories, category)
	return &category, nil
}

// UpdateCategory replaces the mutable fields of an existing category.
func (s *StaticService) UpdateCategory(ctx context.Context, token string, id Key, input CategoryInput) (*Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		s.categories[i].Name = input.Name
		s.categories[i].Description = input.Description
		found := s.categories[i]
		return &found, nil
	}
	return nil, fmt.Errorf("%w: categoría %s", ErrNotFound, id)
}

// DeleteCategory removes a category.
func (s *StaticService) DeleteCategory(ctx context.Context, token string, id Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: categoría %s", ErrNotFound, id)
}

func (s *StaticService) allocateID() Key {
	id := Key(strconv.FormatInt(s.nextID, 10))
	s.nextID++
	return id
}

func (s *StaticService) categoryName(id Key) string {
	for _, c := range s.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}
