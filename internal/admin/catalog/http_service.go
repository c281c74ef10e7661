package catalog

import (
	"context"
	"net/url"
	"path"

	"farmaplus.org/admin/internal/admin/api"
)

// HTTPService implements Service backed by the backend REST endpoints.
type HTTPService struct {
	client *api.Client
}

// NewHTTPService constructs a Service that talks to the backend catalog API.
func NewHTTPService(client *api.Client) *HTTPService {
	return &HTTPService{client: client}
}

// Products retrieves the full product collection.
func (s *HTTPService) Products(ctx context.Context, token string) ([]Product, error) {
	var products []Product
	if err := s.client.Get(ctx, "/products", token, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product retrieves a single product by id.
func (s *HTTPService) Product(ctx context.Context, token string, id Key) (*Product, error) {
	var product Product
	if err := s.client.Get(ctx, productPath(id), token, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct registers a new product.
func (s *HTTPService) CreateProduct(ctx context.Context, token string, input ProductInput) (*Product, error) {
	var product Product
	if err := s.client.Post(ctx, "/products", token, input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces the mutable fields of an existing product.
func (s *HTTPService) UpdateProduct(ctx context.Context, token string, id Key, input ProductInput) (*Product, error) {
	var product Product
	if err := s.client.Put(ctx, productPath(id), token, input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product.
func (s *HTTPService) DeleteProduct(ctx context.Context, token string, id Key) error {
	return s.client.Delete(ctx, productPath(id), token)
}

// Categories retrieves the full category collection.
func (s *HTTPService) Categories(ctx context.Context, token string) ([]Category, error) {
	var categories []Category
	if err := s.client.Get(ctx, "/categories", token, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Category retrieves a single category by id.
func (s *HTTPService) Category(ctx context.Context, token string, id Key) (*Category, error) {
	var category Category
	if err := s.client.Get(ctx, categoryPath(id), token, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory registers a new category.
func (s *HTTPService) CreateCategory(ctx context.Context, token string, input CategoryInput) (*Category, error) {
	var category Category
	if err := s.client.Post(ctx, "/categories", token, input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory replaces the mutable fields of an existing category.
func (s *HTTPService) UpdateCategory(ctx context.Context, token string, id Key, input CategoryInput) (*Category, error) {
	var category Category
	if err := s.client.Put(ctx, categoryPath(id), token, input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category.
func (s *HTTPService) DeleteCategory(ctx context.Context, token string, id Key) error {
	return s.client.Delete(ctx, categoryPath(id), token)
}

func productPath(id Key) string {
	return path.Join("/products", url.PathEscape(string(id)))
}

func categoryPath(id Key) string {
	return path.Join("/categories", url.PathEscape(string(id)))
}
