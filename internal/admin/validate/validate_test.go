package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginRequiresBothFields(t *testing.T) {
	t.Parallel()

	errs := Login(LoginForm{})
	require.True(t, errs.Any())
	require.Equal(t, "El usuario es requerido", errs["username"])
	require.Equal(t, "La contraseña es requerida", errs["password"])

	require.False(t, Login(LoginForm{Username: "admin", Password: "x"}).Any())
}

func TestProductValidations(t *testing.T) {
	t.Parallel()

	errs := Product(ProductForm{})
	require.Equal(t, "El nombre es requerido", errs["name"])
	require.Equal(t, "La descripción es requerida", errs["description"])
	require.Equal(t, "El precio es requerido", errs["price"])
	require.Equal(t, "Debe seleccionar una categoría", errs["category_id"])

	errs = Product(ProductForm{Name: "x", Description: "d", Price: -1, Stock: -5, CategoryID: "1"})
	require.Equal(t, "El precio debe ser positivo", errs["price"])
	require.Equal(t, "El stock no puede ser negativo", errs["stock"])

	require.False(t, Product(ProductForm{Name: "x", Description: "d", Price: 1.5, Stock: 0, CategoryID: "1"}).Any())
}

func TestCategoryValidations(t *testing.T) {
	t.Parallel()

	errs := Category(CategoryForm{})
	require.Equal(t, "El nombre es requerido", errs["name"])
	require.Equal(t, "La descripción es requerida", errs["description"])

	require.False(t, Category(CategoryForm{Name: "x", Description: "d"}).Any())
}
