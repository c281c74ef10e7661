package catalog

import (
	"context"
	"errors"
)

// ErrNotConfigured indicates the catalog service dependency has not been provided.
var ErrNotConfigured = errors.New("catalog service not configured")

// ErrNotFound indicates the requested product or category does not exist.
var ErrNotFound = errors.New("catalog: not found")

// Service exposes the product and category collections backing both the
// public storefront and the back-office CRUD screens. The token is empty for
// anonymous storefront reads.
type Service interface {
	Products(ctx context.Context, token string) ([]Product, error)
	Product(ctx context.Context, token string, id Key) (*Product, error)
	CreateProduct(ctx context.Context, token string, input ProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, token string, id Key, input ProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, token string, id Key) error

	Categories(ctx context.Context, token string) ([]Category, error)
	Category(ctx context.Context, token string, id Key) (*Category, error)
	CreateCategory(ctx context.Context, token string, input CategoryInput) (*Category, error)
	UpdateCategory(ctx context.Context, token string, id Key, input CategoryInput) (*Category, error)
	DeleteCategory(ctx context.Context, token string, id Key) error
}
