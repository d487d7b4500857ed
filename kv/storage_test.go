package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	getHeaders := func() *Storage {
		return New().
			Add("Foo", "bar").
			Add("Hello", "World").
			Add("Lorem", "ipsum").
			Add("Hello", "Pavlo")
	}

	t.Run("first match wins", func(t *testing.T) {
		value, found := getHeaders().Get("Hello")
		require.True(t, found)
		require.Equal(t, "World", value)
	})

	t.Run("exact key comparison", func(t *testing.T) {
		kv := getHeaders()
		require.False(t, kv.Has("hello"))
		require.False(t, kv.Has("HELLO"))
		require.True(t, kv.Has("Hello"))
		require.Equal(t, "", kv.Value("foo"))
	})

	t.Run("value or", func(t *testing.T) {
		kv := getHeaders()
		require.Equal(t, "ipsum", kv.ValueOr("Lorem", "fallback"))
		require.Equal(t, "fallback", kv.ValueOr("Dolor", "fallback"))
	})

	t.Run("insertion order", func(t *testing.T) {
		want := []Pair{
			{"Foo", "bar"},
			{"Hello", "World"},
			{"Lorem", "ipsum"},
			{"Hello", "Pavlo"},
		}
		require.Equal(t, want, getHeaders().Expose())

		got := make([]Pair, 0, len(want))
		for key, value := range getHeaders().Iter() {
			got = append(got, Pair{key, value})
		}
		require.Equal(t, want, got)
	})

	t.Run("values keeps duplicates", func(t *testing.T) {
		kv := getHeaders()
		require.Equal(t, []string{"World", "Pavlo"}, kv.Values("Hello"))
		require.Nil(t, kv.Values("hello"))
	})

	t.Run("unique keys", func(t *testing.T) {
		require.Equal(t, []string{"Foo", "Hello", "Lorem"}, getHeaders().Keys())
	})

	t.Run("clone is independent", func(t *testing.T) {
		kv := getHeaders()
		clone := kv.Clone()
		kv.Clear()

		require.True(t, kv.Empty())
		require.Equal(t, 4, clone.Len())
		require.Equal(t, "bar", clone.Value("Foo"))
	})
}
