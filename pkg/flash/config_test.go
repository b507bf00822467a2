package flash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/flashbag/pkg/config"
	"github.com/dmitrymomot/flashbag/pkg/flash"
)

// LoadConfig reads the process environment, so these tests are not parallel.
func TestLoadConfig(t *testing.T) {
	t.Run("built-in defaults", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		cfg, err := flash.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, flash.DefaultConfig(), cfg)
	})

	t.Run("environment values", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("FLASH_VIEWS", "error:alerts.danger,billing.msg:billing.list")
		t.Setenv("FLASH_VIEW_SHARE", "flash")
		t.Setenv("FLASH_MSG_VARIABLE", "items")
		t.Setenv("FLASH_BLOCK_SPLITTER", "<hr>")

		cfg, err := flash.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"error":       "alerts.danger",
			"billing.msg": "billing.list",
		}, cfg.Views)
		assert.Equal(t, "flash", cfg.ViewShare)
		assert.Equal(t, "items", cfg.MsgVariable)
		assert.Equal(t, "<hr>", cfg.BlockSplitter)
		assert.Equal(t, `<p class="%2$s %3$s">%1$s</p>`, cfg.DefaultTemplate)
	})

	t.Run("views file merged under environment views", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("FLASH_VIEWS_FILE", "testdata/views.yaml")
		t.Setenv("FLASH_VIEWS", "error:alerts.danger")

		cfg, err := flash.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"default.msg":     "",
			"error":           "alerts.danger",
			"billing.warning": "billing.alert",
		}, cfg.Views)
	})

	t.Run("missing views file", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("FLASH_VIEWS_FILE", "testdata/missing.yaml")

		_, err := flash.LoadConfig()
		require.Error(t, err)
		assert.ErrorIs(t, err, flash.ErrLoadingViews)
		assert.ErrorIs(t, err, config.ErrReadingFile)

		assert.Panics(t, func() {
			flash.MustLoadConfig()
		})
	})
}
