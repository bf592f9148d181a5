package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nconklindev/stockcell/internal/types"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := Load(viper.New(), "")
		require.NoError(t, err)

		assert.Equal(t, "classic", cfg.Variant)
		assert.Equal(t, types.VariantClassic, cfg.ParsedVariant())
		assert.Empty(t, cfg.File)
		assert.False(t, cfg.Demo)
		assert.False(t, cfg.Watch)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Empty(t, cfg.Log.File)
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("STOCKCELL_VARIANT", "extended")
		t.Setenv("STOCKCELL_FILE", "stock.xlsx")
		t.Setenv("STOCKCELL_DEMO", "true")
		t.Setenv("STOCKCELL_LOG_LEVEL", "debug")
		t.Setenv("STOCKCELL_LOG_FILE", "/tmp/stockcell.log")

		cfg, err := Load(viper.New(), "")
		require.NoError(t, err)

		assert.Equal(t, types.VariantExtended, cfg.ParsedVariant())
		assert.Equal(t, "stock.xlsx", cfg.File)
		assert.True(t, cfg.Demo)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "/tmp/stockcell.log", cfg.Log.File)
	})

	t.Run("reads an explicit config file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		path := filepath.Join(dir, "custom.yaml")
		content := "variant: \"2\"\nwatch: true\nfile: inventory.xlsx\nlog:\n  level: warn\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(viper.New(), path)
		require.NoError(t, err)

		assert.Equal(t, types.VariantExtended, cfg.ParsedVariant())
		assert.True(t, cfg.Watch)
		assert.Equal(t, "inventory.xlsx", cfg.File)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("finds stockcell.yaml in the working directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "stockcell.yaml"), []byte("demo: true\n"), 0o644))

		cfg, err := Load(viper.New(), "")
		require.NoError(t, err)
		assert.True(t, cfg.Demo)
	})

	t.Run("missing explicit config file is an error", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("bound values override defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		v := viper.New()
		v.Set("variant", "extended")

		cfg, err := Load(v, "")
		require.NoError(t, err)
		assert.Equal(t, types.VariantExtended, cfg.ParsedVariant())
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid classic", Config{Variant: "classic", Log: LogConfig{Level: "info"}}, false},
		{"valid extended upper level", Config{Variant: "extended", Log: LogConfig{Level: "ERROR"}}, false},
		{"unknown variant", Config{Variant: "fancy", Log: LogConfig{Level: "info"}}, true},
		{"unknown log level", Config{Variant: "classic", Log: LogConfig{Level: "loud"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
