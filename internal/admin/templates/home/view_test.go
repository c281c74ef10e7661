package home

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"farmaplus.org/admin/internal/admin/catalog"
	"farmaplus.org/admin/internal/admin/picks"
)

func TestBuildPageDataMarksMemberships(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		{ID: "1", Name: "Paracetamol", Price: 3.95, Stock: 120},
		{ID: "2", Name: "Ibuprofeno", Price: 4.5, Stock: 0},
	}
	favorites := picks.New("1")
	cart := picks.New("2")

	data := BuildPageData(products, nil, favorites, cart, "", "")

	require.Len(t, data.Products, 2)
	require.True(t, data.Products[0].Favorite)
	require.False(t, data.Products[0].InCart)
	require.True(t, data.Products[1].InCart)
	require.Equal(t, "3,95 €", data.Products[0].Price)
	require.Equal(t, "Sin stock", data.Products[1].StockLabel)
}

func TestPageRendersCardsAndSelectedCategory(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		{ID: "1", Name: "Paracetamol", Category: "Analgésicos", Manufacturer: "Bayer", Price: 3.95, Stock: 120},
	}
	categories := []catalog.Category{
		{ID: "1", Name: "Analgésicos"},
		{ID: "2", Name: "Digestivo"},
	}

	data := BuildPageData(products, categories, nil, nil, "para", "Analgésicos")
	data.CSRFToken = "tok"

	var buf bytes.Buffer
	require.NoError(t, Page(data).Render(context.Background(), &buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	require.Equal(t, 1, doc.Find(`article[data-product-id="1"]`).Length())
	require.Equal(t, "para", doc.Find(`input[name="q"]`).AttrOr("value", ""))

	selected := doc.Find(`select[name="categoria"] option[selected]`)
	require.Equal(t, 1, selected.Length())
	require.Equal(t, "Analgésicos", selected.Text())

	require.Equal(t, "tok", doc.Find(`article form input[name="csrf_token"]`).First().AttrOr("value", ""))
}

func TestPageRendersFeaturedStrip(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		{ID: "1", Name: "Paracetamol", Price: 3.95, Stock: 120},
		{ID: "2", Name: "Ibuprofeno", Price: 4.5, Stock: 80},
	}

	data := BuildPageData(products, nil, nil, nil, "", "")
	data.Featured = BuildCards(products[:1], nil, nil)

	var buf bytes.Buffer
	require.NoError(t, Page(data).Render(context.Background(), &buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	require.Equal(t, 1, doc.Find(`[data-testid="featured-grid"] article`).Length())
	require.Equal(t, 2, doc.Find(`[data-testid="product-grid"] article`).Length())
}

func TestFavoritesPage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, FavoritesPage(PageData{}).Render(context.Background(), &buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	require.Equal(t, 1, doc.Find(`[data-testid="empty-favorites"]`).Length())

	products := []catalog.Product{
		{ID: "3", Name: "Omeprazol", Price: 6.2, Stock: 40},
	}
	buf.Reset()
	require.NoError(t, FavoritesPage(PageData{Products: BuildCards(products, picks.New("3"), nil)}).Render(context.Background(), &buf))

	doc, err = goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	require.Equal(t, 1, doc.Find(`[data-testid="favorites-grid"] article[data-product-id="3"]`).Length())
}

func TestPageEscapesUserContent(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		{ID: "1", Name: `<script>alert("x")</script>`, Price: 1, Stock: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, Page(BuildPageData(products, nil, nil, nil, "", "")).Render(context.Background(), &buf))

	require.NotContains(t, buf.String(), "<script>alert")
}
