package tcp

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	t.Run("read is limited by the buffer", func(t *testing.T) {
		local, remote := net.Pipe()
		client := NewClient(local, make([]byte, 4))

		go func() {
			_, _ = remote.Write([]byte("overflow"))
		}()

		data, err := client.Read()
		require.NoError(t, err)
		require.Equal(t, "over", string(data))

		data, err = client.Read()
		require.NoError(t, err)
		require.Equal(t, "flow", string(data))

		require.NoError(t, client.Close())
	})

	t.Run("write passes through", func(t *testing.T) {
		local, remote := net.Pipe()
		client := NewClient(local, make([]byte, 64))

		go func() {
			_ = client.Write([]byte("hello"))
		}()

		buff := make([]byte, 64)
		n, err := remote.Read(buff)
		require.NoError(t, err)
		require.Equal(t, "hello", string(buff[:n]))

		require.NoError(t, client.Close())
	})
}
