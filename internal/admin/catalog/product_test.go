package catalog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyUnmarshalNormalizesNumbersAndStrings(t *testing.T) {
	t.Parallel()

	cases := map[string]Key{
		`1`:       "1",
		`"1"`:     "1",
		`1.0`:     "1",
		`" 42 "`:  "42",
		`"abc-7"`: "abc-7",
		`null`:    "",
	}
	for raw, want := range cases {
		var k Key
		require.NoError(t, json.Unmarshal([]byte(raw), &k), "input %s", raw)
		require.Equal(t, want, k, "input %s", raw)
	}
}

func TestKeyMarshalRestoresNumericForm(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(Key("7"))
	require.NoError(t, err)
	require.Equal(t, `7`, string(out))

	out, err = json.Marshal(Key("abc"))
	require.NoError(t, err)
	require.Equal(t, `"abc"`, string(out))
}

func TestProductUnmarshalAcceptsEmbeddedCategoryObject(t *testing.T) {
	t.Parallel()

	raw := `{
		"id": 3,
		"name": "Omeprazol 20mg",
		"price": 5.45,
		"stock": 30,
		"category": {"id": 5, "name": "Digestivo"},
		"created_at": "2024-02-10T08:30:00Z"
	}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	require.Equal(t, Key("3"), p.ID)
	require.Equal(t, "Digestivo", p.Category)
	require.Equal(t, Key("5"), p.CategoryID)
	require.Equal(t, time.Date(2024, 2, 10, 8, 30, 0, 0, time.UTC), p.CreatedAt)
}

func TestProductUnmarshalAcceptsCategoryNameString(t *testing.T) {
	t.Parallel()

	raw := `{"id": "3", "name": "Omeprazol", "category": "Digestivo", "category_id": 5}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	require.Equal(t, "Digestivo", p.Category)
	require.Equal(t, Key("5"), p.CategoryID)
}

func TestProductUnmarshalAcceptsCamelCaseTimestamps(t *testing.T) {
	t.Parallel()

	raw := `{"id": 1, "name": "x", "createdAt": "2024-05-01T12:00:00Z", "updatedAt": "2024-05-02"}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	require.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), p.CreatedAt)
	require.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), p.UpdatedAt)
}

func TestProductMarshalEmitsCategoryName(t *testing.T) {
	t.Parallel()

	p := Product{ID: "2", Name: "Ibuprofeno", Category: "Analgésicos", CategoryID: "1", Price: 4.75}

	out, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Equal(t, "Analgésicos", decoded["category"])
	require.Equal(t, float64(2), decoded["id"])
}

func TestProductInputEncodesNumericCategoryID(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(ProductInput{Name: "x", CategoryID: "4"})
	require.NoError(t, err)
	require.Contains(t, string(out), `"category_id":4`)
}
