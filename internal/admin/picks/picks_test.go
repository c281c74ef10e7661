package picks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"farmaplus.org/admin/internal/admin/catalog"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	t.Parallel()

	s := New()
	require.False(t, s.Has("1"))

	s = Toggle(s, "1")
	require.True(t, s.Has("1"))

	s = Toggle(s, "1")
	require.False(t, s.Has("1"))
	require.Empty(t, s)
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	original := New("1", "2")
	next := Toggle(original, "3")

	require.Len(t, original, 2)
	require.Len(t, next, 3)
	require.False(t, original.Has("3"))
}

func TestToggleNormalizesSpellings(t *testing.T) {
	t.Parallel()

	s := New()
	s = Toggle(s, catalog.ParseKey(" 7 "))
	require.True(t, s.Has("7"))

	s = Toggle(s, "7")
	require.Empty(t, s)
}

func TestKeysAreSorted(t *testing.T) {
	t.Parallel()

	s := New("3", "1", "2")
	require.Equal(t, []catalog.Key{"1", "2", "3"}, s.Keys())
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	s := New("2", "1")
	out, err := json.Marshal(s)
	require.NoError(t, err)
	require.JSONEq(t, `["1", "2"]`, string(out))

	var decoded Set
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.True(t, decoded.Has("1"))
	require.True(t, decoded.Has("2"))
	require.Len(t, decoded, 2)
}

func TestUnmarshalNormalizesNumericKeys(t *testing.T) {
	t.Parallel()

	var s Set
	require.NoError(t, json.Unmarshal([]byte(`[1, "2"]`), &s))
	require.True(t, s.Has("1"))
	require.True(t, s.Has("2"))
}
