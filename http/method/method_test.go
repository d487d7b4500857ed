package method

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func BenchmarkMethod(b *testing.B) {
	var parsed Method

	for _, m := range List {
		b.Run(m.String(), func(b *testing.B) {
			str := m.String()
			b.SetBytes(int64(len(str)))
			b.ResetTimer()

			for j := 0; j < b.N; j++ {
				parsed = Parse(str)
			}
		})
	}

	keepalive(parsed)
}

func keepalive(Method) {}

func TestMethod(t *testing.T) {
	for _, m := range List {
		assert.Equal(t, m.String(), Parse(m.String()).String())
	}
}

func TestMethodUnrecognized(t *testing.T) {
	for _, str := range []string{"", "get", "Get", "GETT", "GE", "PATCHY", "P0ST", " GET"} {
		assert.Equal(t, Unknown, Parse(str), str)
	}
}
