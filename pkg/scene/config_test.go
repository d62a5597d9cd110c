package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flocking"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	return path
}

func TestDefaultConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestLoadConfig_SampleScene(t *testing.T) {
	for _, schema := range []string{"", "scene.schema.json"} {
		cfg, err := LoadConfig("../../configs/scene.json", schema)
		if err != nil {
			t.Fatalf("LoadConfig(schema=%q): %v", schema, err)
		}
		if cfg.Width != 1024 || cfg.Height != 800 || cfg.Seed != 42 || !cfg.Wrap {
			t.Errorf("unexpected scene settings %+v", cfg)
		}
		if len(cfg.Flocks) != 2 || cfg.Flocks[0].ID != "red" || cfg.Flocks[1].ID != "blue" {
			t.Fatalf("unexpected flocks %+v", cfg.Flocks)
		}
		if cfg.Flocks[1].Center != (geometry.Vector2D{X: 250, Y: -150}) {
			t.Errorf("blue center = %v", cfg.Flocks[1].Center)
		}
	}
}

func TestLoadConfig_FillsDefaults(t *testing.T) {
	path := writeScene(t, `{"width": 300, "height": 200, "policy": "acceleration-limited",
		"flocks": [{"id": "a", "members": 3}]}`)

	cfg, err := LoadConfig(path, "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TPS != 60 || !cfg.Wrap || cfg.Policy != flocking.PolicyAccelerationLimited {
		t.Errorf("scene settings = %+v", cfg)
	}
	if b := cfg.Bounds(); b.Width() != 300 || b.Height() != 200 {
		t.Errorf("Bounds() = %v", b)
	}
	f := cfg.Flocks[0]
	if f.Radius != 50 || f.SizeMin != 12 || f.SizeMax != 20 || f.MaxSpeed != 200 {
		t.Errorf("flock defaults not applied: %+v", f)
	}
	if f.Alignment != 0 || f.Members != 3 {
		t.Errorf("explicit or omitted weights changed: %+v", f)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name  string
		scene string
	}{
		{"malformed json", `{"width": 100,`},
		{"missing flocks", `{"width": 100, "height": 100}`},
		{"empty flocks", `{"width": 100, "height": 100, "flocks": []}`},
		{"zero width", `{"width": 0, "height": 100, "flocks": [{"id": "a", "members": 1}]}`},
		{"negative members", `{"width": 100, "height": 100, "flocks": [{"id": "a", "members": -1}]}`},
		{"unknown policy", `{"width": 100, "height": 100, "policy": "warp", "flocks": [{"id": "a", "members": 1}]}`},
		{"unknown field", `{"width": 100, "height": 100, "gravity": 9.8, "flocks": [{"id": "a", "members": 1}]}`},
		{"duplicate flock", `{"width": 100, "height": 100, "flocks": [{"id": "a", "members": 1}, {"id": "a", "members": 2}]}`},
		{"sizes swapped", `{"width": 100, "height": 100, "flocks": [{"id": "a", "members": 1, "sizeMin": 20, "sizeMax": 10}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeScene(t, tt.scene), ""); err == nil {
				t.Errorf("LoadConfig accepted %s", tt.scene)
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"), ""); err == nil {
		t.Error("LoadConfig accepted a missing file")
	}
	if _, err := LoadConfig("../../configs/scene.json", filepath.Join(t.TempDir(), "missing.schema.json")); err == nil {
		t.Error("LoadConfig accepted a missing schema")
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = flocking.PolicyAccelerationLimited
	cfg.Wrap = false

	sim := flocking.NewSimulation(flocking.NewWorld(), cfg.Options()...)
	if sim.Policy() != flocking.PolicyAccelerationLimited || sim.Wrapping() {
		t.Errorf("options not applied: policy=%s wrap=%v", sim.Policy(), sim.Wrapping())
	}
}
