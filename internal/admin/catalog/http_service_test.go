package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"farmaplus.org/admin/internal/admin/api"
)

func newBackend(t *testing.T, handler http.HandlerFunc) *HTTPService {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := api.NewClient(ts.URL+"/api", ts.Client())
	require.NoError(t, err)
	return NewHTTPService(client)
}

func TestHTTPServiceProductsDecodesUnionShapes(t *testing.T) {
	t.Parallel()

	svc := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/products", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": [
			{"id": 1, "name": "Paracetamol", "category": {"id": 2, "name": "Analgésicos"}},
			{"id": "7", "name": "Omeprazol", "category": "Digestivo"}
		]}`))
	})

	products, err := svc.Products(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, Key("1"), products[0].ID)
	require.Equal(t, "Analgésicos", products[0].Category)
	require.Equal(t, Key("2"), products[0].CategoryID)
	require.Equal(t, "Digestivo", products[1].Category)
}

func TestHTTPServiceCreateProductSendsInput(t *testing.T) {
	t.Parallel()

	svc := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/products", r.URL.Path)

		var input map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		require.Equal(t, "Omeprazol", input["name"])
		require.Equal(t, float64(4), input["category_id"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {"id": 20, "name": "Omeprazol"}}`))
	})

	created, err := svc.CreateProduct(context.Background(), "tok", ProductInput{Name: "Omeprazol", CategoryID: "4"})
	require.NoError(t, err)
	require.Equal(t, Key("20"), created.ID)
}

func TestHTTPServiceUpdateUsesPathWithID(t *testing.T) {
	t.Parallel()

	svc := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/categories/5", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {"id": 5, "name": "Digestivo"}}`))
	})

	updated, err := svc.UpdateCategory(context.Background(), "tok", "5", CategoryInput{Name: "Digestivo"})
	require.NoError(t, err)
	require.Equal(t, "Digestivo", updated.Name)
}

func TestHTTPServiceSurfacesBackendMessage(t *testing.T) {
	t.Parallel()

	svc := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success": false, "message": "El producto ya existe"}`))
	})

	_, err := svc.CreateProduct(context.Background(), "tok", ProductInput{Name: "x"})
	require.Error(t, err)
	require.Equal(t, "El producto ya existe", api.Message(err))
}

func TestHTTPServiceDeleteMapsUnauthorized(t *testing.T) {
	t.Parallel()

	svc := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	err := svc.DeleteProduct(context.Background(), "stale", "1")
	require.ErrorIs(t, err, api.ErrUnauthorized)
}
