package codewing

import (
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name      string
		got, want float64
	}{
		{"swarm spawn chance", cfg.Swarm.SpawnChance, 0.012},
		{"swarm hit radius", cfg.Swarm.HitRadius, 80},
		{"swarm gravity", cfg.Swarm.Physics.Gravity, 0.05},
		{"swarm friction", cfg.Swarm.Physics.Friction, 0.98},
		{"swarm alpha decay", cfg.Swarm.Physics.AlphaDecay, 0.008},
		{"curve tmax", cfg.Swarm.Curve.TMax, 12 * math.Pi},
		{"curve step", cfg.Swarm.Curve.Step, 0.3},
		{"field gravity", cfg.Field.Physics.Gravity, 0.4},
		{"field friction", cfg.Field.Physics.Friction, 0.95},
		{"field alpha decay", cfg.Field.Physics.AlphaDecay, 0.015},
		{"melt life", cfg.Melt.Life, 1.5},
		{"melt decay", cfg.Melt.LifeDecay, 0.015},
		{"melt damping", cfg.Melt.SpeedDamping, 0.99},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if cfg.Swarm.Curve.BodyCount != 6 {
		t.Errorf("body count = %d, want 6", cfg.Swarm.Curve.BodyCount)
	}
	if cfg.Field.Sampler.FallbackCount != 300 || cfg.Field.Sampler.MinSamples != 10 {
		t.Errorf("fallback = %d/%d, want 300/10", cfg.Field.Sampler.FallbackCount, cfg.Field.Sampler.MinSamples)
	}
	if cfg.Melt.DripBatch != 5 {
		t.Errorf("drip batch = %d, want 5", cfg.Melt.DripBatch)
	}
}

func TestDefaultConfigVocabularyIsCopied(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Swarm.Vocabulary[0] = "changed"
	if SwarmKeywords[0] == "changed" {
		t.Error("DefaultConfig shares the SwarmKeywords backing array")
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"swarm":{"spawnChance":0.5,"physics":{"gravity":1}},"melt":{"dripBatch":9}}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Swarm.SpawnChance != 0.5 {
		t.Errorf("spawnChance = %v, want 0.5", cfg.Swarm.SpawnChance)
	}
	if cfg.Swarm.Physics.Gravity != 1 {
		t.Errorf("gravity = %v, want 1", cfg.Swarm.Physics.Gravity)
	}
	// Untouched siblings keep their defaults.
	if cfg.Swarm.Physics.Friction != 0.98 {
		t.Errorf("friction = %v, want default 0.98", cfg.Swarm.Physics.Friction)
	}
	if cfg.Melt.DripBatch != 9 || cfg.Melt.Life != 1.5 {
		t.Errorf("melt = %+v", cfg.Melt)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	if _, err := LoadConfig([]byte(`{"swarm":`)); err == nil {
		t.Error("LoadConfig(truncated) returned nil error")
	}
	if _, err := LoadConfig([]byte(`{"swarm":{"maxShapes":"lots"}}`)); err == nil {
		t.Error("LoadConfig(wrong type) returned nil error")
	}
}
