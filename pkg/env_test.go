package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	const defaultValue = "default"

	t.Run("unset key falls back to default", func(t *testing.T) {
		assert.Equal(t, defaultValue, Getenv("FILMARKET_UNSET_KEY", defaultValue))
	})
	t.Run("empty value wins over default", func(t *testing.T) {
		t.Setenv("FILMARKET_EMPTY_KEY", "")
		assert.Empty(t, Getenv("FILMARKET_EMPTY_KEY", defaultValue))
	})
	t.Run("set value is returned", func(t *testing.T) {
		t.Setenv("FILMARKET_SET_KEY", "value")
		assert.Equal(t, "value", Getenv("FILMARKET_SET_KEY", defaultValue))
	})
}
