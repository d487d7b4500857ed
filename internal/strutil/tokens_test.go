package strutil

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestHasToken(t *testing.T) {
	for _, list := range []string{
		"gzip",
		"deflate, gzip",
		"gzip, deflate, br",
		"deflate,gzip",
		"deflate,  gzip ",
	} {
		require.True(t, HasToken(list, "gzip"), list)
	}

	for _, list := range []string{
		"",
		"deflate",
		"supergzip",
		"gzip2, br",
		"GZIP",
	} {
		require.False(t, HasToken(list, "gzip"), list)
	}
}
