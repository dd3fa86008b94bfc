package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type store struct{}

func TestCheckInit(t *testing.T) {
	t.Run(`initialized dependencies`, func(t *testing.T) {
		require.NotPanics(t, func() {
			CheckInit("store", &store{}, "name", "value")
		})
	})

	t.Run(`nil dependency`, func(t *testing.T) {
		require.PanicsWithValue(t, "store dependency not initialized", func() {
			CheckInit("store", nil)
		})
	})

	t.Run(`typed nil dependency`, func(t *testing.T) {
		var s *store
		require.PanicsWithValue(t, "db dependency not initialized", func() {
			CheckInit("db", s)
		})
	})

	t.Run(`odd arguments`, func(t *testing.T) {
		require.Panics(t, func() {
			CheckInit("store")
		})
	})
}
