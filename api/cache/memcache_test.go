package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemCache(t *testing.T) {
	mc := NewMemCache()
	defer mc.Close()

	t.Run("missingKey", func(t *testing.T) {
		assert.Nil(t, mc.Get("missing"))
	})

	t.Run("setAndGet", func(t *testing.T) {
		mc.Set("key", "value", time.Minute)
		assert.Equal(t, "value", mc.Get("key"))
	})

	t.Run("expiredKey", func(t *testing.T) {
		mc.Set("fleeting", "value", -time.Second)
		assert.Nil(t, mc.Get("fleeting"))
	})

	t.Run("overwrite", func(t *testing.T) {
		mc.Set("key", "first", time.Minute)
		mc.Set("key", "second", time.Minute)
		assert.Equal(t, "second", mc.Get("key"))
	})
}
