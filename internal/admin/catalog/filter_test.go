package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleProducts() []Product {
	return []Product{
		{ID: "1", Name: "Paracetamol 500mg", Description: "Analgésico y antipirético", ActiveIngredient: "Paracetamol", Manufacturer: "Bayer", Category: "Analgésicos"},
		{ID: "2", Name: "Ibuprofeno 400mg", Description: "Antiinflamatorio no esteroideo", ActiveIngredient: "Ibuprofeno", Manufacturer: "Cinfa", Category: "Analgésicos"},
		{ID: "3", Name: "Vitamina C 1000mg", Description: "Refuerzo del sistema inmunitario", ActiveIngredient: "Ácido ascórbico", Manufacturer: "Bayer", Category: "Vitaminas y Suplementos"},
		{ID: "4", Name: "Omeprazol 20mg", Description: "Protector gástrico", ActiveIngredient: "Omeprazol", Manufacturer: "Normon", Category: "Digestivo"},
	}
}

func TestFilterEmptyQueryReturnsEverything(t *testing.T) {
	t.Parallel()

	products := sampleProducts()
	result := Filter(products, "", "")

	require.Equal(t, products, result)
}

func TestFilterMatchesNameCaseInsensitively(t *testing.T) {
	t.Parallel()

	result := Filter(sampleProducts(), "PARACETAMOL", "")

	require.Len(t, result, 1)
	require.Equal(t, Key("1"), result[0].ID)
}

func TestFilterMatchesManufacturer(t *testing.T) {
	t.Parallel()

	result := Filter(sampleProducts(), "bayer", "")

	require.Len(t, result, 2)
	require.Equal(t, Key("1"), result[0].ID)
	require.Equal(t, Key("3"), result[1].ID)
}

func TestFilterMatchesActiveIngredient(t *testing.T) {
	t.Parallel()

	result := Filter(sampleProducts(), "ibuprofeno", "")

	require.Len(t, result, 1)
	require.Equal(t, "Ibuprofeno 400mg", result[0].Name)
}

func TestFilterCategoryIsExactAndCaseSensitive(t *testing.T) {
	t.Parallel()

	products := sampleProducts()

	require.Len(t, Filter(products, "", "Analgésicos"), 2)
	require.Empty(t, Filter(products, "", "analgésicos"))
	require.Empty(t, Filter(products, "", "Analgé"))
}

func TestFilterCombinesQueryAndCategory(t *testing.T) {
	t.Parallel()

	result := Filter(sampleProducts(), "bayer", "Analgésicos")

	require.Len(t, result, 1)
	require.Equal(t, Key("1"), result[0].ID)
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	t.Parallel()

	products := sampleProducts()
	original := append([]Product(nil), products...)

	result := Filter(products, "o", "")
	for i := 1; i < len(result); i++ {
		require.Less(t, indexOf(t, original, result[i-1].ID), indexOf(t, original, result[i].ID))
	}
	require.Equal(t, original, products)
}

func TestFilterIsIdempotent(t *testing.T) {
	t.Parallel()

	once := Filter(sampleProducts(), "bayer", "")
	twice := Filter(once, "bayer", "")

	require.Equal(t, once, twice)
}

func TestFeaturedOrdersByStockDescending(t *testing.T) {
	t.Parallel()

	products := []Product{
		{ID: "1", Stock: 5},
		{ID: "2", Stock: 50},
		{ID: "3", Stock: 20},
		{ID: "4", Stock: 50},
	}

	result := Featured(products, 3)

	require.Len(t, result, 3)
	require.Equal(t, Key("2"), result[0].ID)
	require.Equal(t, Key("4"), result[1].ID)
	require.Equal(t, Key("3"), result[2].ID)
}

func indexOf(t *testing.T, products []Product, id Key) int {
	t.Helper()
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	t.Fatalf("product %s not found", id)
	return -1
}
