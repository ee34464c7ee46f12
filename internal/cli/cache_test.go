package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desenhapp/svgprep/pkg/pipeline"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir == "" {
		t.Fatal("cacheDir() returned empty string")
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", "svgprep")
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", "svgprep") {
		t.Errorf("cacheDir() = %q, want XDG-based path", dir)
	}
}

func TestNewCache_Disabled(t *testing.T) {
	c, err := newCache(t.Context(), &Config{}, true)
	if err != nil {
		t.Fatalf("newCache() error: %v", err)
	}
	if c == nil {
		t.Fatal("newCache() returned nil cache")
	}

	// Null cache never stores anything.
	_, hit, err := c.Get(t.Context(), "key")
	if err != nil || hit {
		t.Errorf("Get() = hit %v, err %v; want miss, nil", hit, err)
	}
}

func TestNewCache_BackendNone(t *testing.T) {
	cfg := &Config{}
	cfg.Cache.Backend = CacheBackendNone

	c, err := newCache(t.Context(), cfg, false)
	if err != nil {
		t.Fatalf("newCache() error: %v", err)
	}
	_, hit, _ := c.Get(t.Context(), "key")
	if hit {
		t.Error("backend none should never hit")
	}
}

func TestNewCache_FileDirOverride(t *testing.T) {
	cfg := &Config{}
	cfg.Cache.Dir = t.TempDir()

	c, err := newCache(t.Context(), cfg, false)
	if err != nil {
		t.Fatalf("newCache() error: %v", err)
	}
	defer c.Close()

	if err := c.Set(t.Context(), "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	got, hit, err := c.Get(t.Context(), "k")
	if err != nil || !hit || string(got) != "v" {
		t.Errorf("Get() = %q, hit %v, err %v; want v, true, nil", got, hit, err)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Cache.Backend != "" {
		t.Errorf("Cache.Backend = %q, want empty default", cfg.Cache.Backend)
	}
}

func TestLoadConfig_MissingExplicit(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("loadConfig() with missing explicit path should fail")
	}
}

func TestLoadConfig_Profile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	profile := `
[classify]
min_area = 250.0
palette = ["#111111", "#EEEEEE"]

[transform]
min_stroke_width = 3.0

[cache]
backend = "file"
dir = "/tmp/svgprep-cache"
`
	if err := os.WriteFile(path, []byte(profile), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Classify.MinArea != 250 {
		t.Errorf("Classify.MinArea = %v, want 250", cfg.Classify.MinArea)
	}
	if len(cfg.Classify.Palette) != 2 {
		t.Errorf("Classify.Palette = %v, want 2 entries", cfg.Classify.Palette)
	}
	if cfg.Transform.MinStrokeWidth != 3 {
		t.Errorf("Transform.MinStrokeWidth = %v, want 3", cfg.Transform.MinStrokeWidth)
	}
	if cfg.Cache.Backend != CacheBackendFile || cfg.Cache.Dir != "/tmp/svgprep-cache" {
		t.Errorf("Cache = %+v, want file backend with dir", cfg.Cache)
	}
}

func TestLoadConfig_InvalidBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[cache]\nbackend = \"memcache\"\n"), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	_, err := loadConfig(path)
	if err == nil {
		t.Fatal("loadConfig() with unknown backend should fail")
	}
	if !strings.Contains(err.Error(), "memcache") {
		t.Errorf("error = %v, should name the unknown backend", err)
	}
}

func TestLoadConfig_RedisRequiresAddr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[cache]\nbackend = \"redis\"\n"), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig() with redis backend and no addr should fail")
	}
}

func TestConfigApplyTo(t *testing.T) {
	cfg := &Config{}
	cfg.Classify.MinArea = 250
	cfg.Transform.MinStrokeWidth = 3

	opts := pipeline.Options{}
	cfg.applyTo(&opts)

	if opts.MinArea != 250 || opts.MinStrokeWidth != 3 {
		t.Errorf("applyTo() = MinArea %v, MinStrokeWidth %v; want 250, 3",
			opts.MinArea, opts.MinStrokeWidth)
	}
}
