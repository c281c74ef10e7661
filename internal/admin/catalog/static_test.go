package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newSeededService() *StaticService {
	return NewStaticService(
		[]Product{
			{ID: "1", Name: "Paracetamol", CategoryID: "10", Category: "Analgésicos", Price: 3.5, Stock: 100},
			{ID: "2", Name: "Ibuprofeno", CategoryID: "10", Category: "Analgésicos", Price: 4.75, Stock: 80},
		},
		[]Category{
			{ID: "10", Name: "Analgésicos", Description: "Alivio del dolor"},
			{ID: "11", Name: "Digestivo", Description: "Salud digestiva"},
		},
	)
}

func TestStaticServiceCreateProductAllocatesNextID(t *testing.T) {
	t.Parallel()

	svc := newSeededService()

	created, err := svc.CreateProduct(context.Background(), "", ProductInput{
		Name: "Omeprazol", Description: "Protector", Price: 5.45, Stock: 30, CategoryID: "11",
	})
	require.NoError(t, err)
	require.Equal(t, Key("12"), created.ID)
	require.Equal(t, "Digestivo", created.Category)
	require.False(t, created.CreatedAt.IsZero())

	products, err := svc.Products(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, products, 3)
}

func TestStaticServiceUpdateProductResolvesCategoryName(t *testing.T) {
	t.Parallel()

	svc := newSeededService()

	updated, err := svc.UpdateProduct(context.Background(), "", "2", ProductInput{
		Name: "Ibuprofeno 600", Description: "d", Price: 5.2, Stock: 60, CategoryID: "11",
	})
	require.NoError(t, err)
	require.Equal(t, "Ibuprofeno 600", updated.Name)
	require.Equal(t, "Digestivo", updated.Category)
}

func TestStaticServiceDeleteProduct(t *testing.T) {
	t.Parallel()

	svc := newSeededService()

	require.NoError(t, svc.DeleteProduct(context.Background(), "", "1"))

	_, err := svc.Product(context.Background(), "", "1")
	require.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteProduct(context.Background(), "", "1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStaticServiceReadsReturnCopies(t *testing.T) {
	t.Parallel()

	svc := newSeededService()

	products, err := svc.Products(context.Background(), "")
	require.NoError(t, err)
	products[0].Name = "mutated"

	fresh, err := svc.Products(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "Paracetamol", fresh[0].Name)
}

func TestStaticServiceCategoryCRUD(t *testing.T) {
	t.Parallel()

	svc := newSeededService()

	created, err := svc.CreateCategory(context.Background(), "", CategoryInput{Name: "Respiratorio", Description: "Vías respiratorias"})
	require.NoError(t, err)
	require.Equal(t, Key("12"), created.ID)

	updated, err := svc.UpdateCategory(context.Background(), "", created.ID, CategoryInput{Name: "Respiratorio y alergias", Description: "d"})
	require.NoError(t, err)
	require.Equal(t, "Respiratorio y alergias", updated.Name)

	require.NoError(t, svc.DeleteCategory(context.Background(), "", created.ID))

	_, err = svc.Category(context.Background(), "", created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
