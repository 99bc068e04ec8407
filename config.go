package codewing

import (
	"encoding/json"
	"fmt"
	"math"
)

// Config holds every tunable constant of an Engine. Start from DefaultConfig
// and override fields, or overlay JSON with LoadConfig.
type Config struct {
	Swarm SwarmConfig `json:"swarm"`
	Field FieldConfig `json:"field"`
	Melt  MeltConfig  `json:"melt"`
	Wind  WindConfig  `json:"wind"`
}

// BrokenPhysics controls free-fall of released particles. All quantities are
// per tick.
type BrokenPhysics struct {
	// Gravity is added to vy each tick.
	Gravity float64 `json:"gravity"`
	// Friction multiplies vx and vy each tick. Must be < 1 to damp.
	Friction float64 `json:"friction"`
	// FlutterStrength scales the lateral sin(clock*FlutterRate + rotation) force.
	FlutterStrength float64 `json:"flutterStrength"`
	// FlutterRate is the flutter angular speed in radians per tick.
	FlutterRate float64 `json:"flutterRate"`
	// AlphaDecay is subtracted from alpha each tick.
	AlphaDecay float64 `json:"alphaDecay"`
}

// CurveConfig controls the parametric butterfly sampler.
type CurveConfig struct {
	// Step is the parameter increment; t runs over [0, TMax].
	Step float64 `json:"step"`
	TMax float64 `json:"tMax"`
	// WingDensity is the probability that a curve point becomes a particle.
	WingDensity float64 `json:"wingDensity"`
	// InnerThreshold bounds |x| and |y| (curve units) for the inner layer.
	InnerThreshold float64 `json:"innerThreshold"`
	// CurveScale converts curve units to pixels at scale 1.
	CurveScale float64 `json:"curveScale"`
	// InnerSize and OuterSize are glyph sizes at scale 1.
	InnerSize  Range   `json:"innerSize"`
	OuterSize  Range   `json:"outerSize"`
	InnerAlpha float64 `json:"innerAlpha"`
	OuterAlpha float64 `json:"outerAlpha"`
	// BodyCount particles are laid on a vertical line through the origin.
	BodyCount   int     `json:"bodyCount"`
	BodySpacing float64 `json:"bodySpacing"`
	BodyWidth   float64 `json:"bodyWidth"`
	BodySize    float64 `json:"bodySize"`
	BodyAlpha   Range   `json:"bodyAlpha"`
	// Tilt and Spin are the spans of initial rotation and rotation speed.
	Tilt     float64 `json:"tilt"`
	Spin     float64 `json:"spin"`
	BodySpin float64 `json:"bodySpin"`
}

// SwarmConfig controls the rising butterfly swarm.
type SwarmConfig struct {
	Vocabulary []string `json:"vocabulary"`
	// Palette holds hex colors; attached glyphs take the first entry and
	// broken glyphs the last.
	Palette []string `json:"palette"`
	// SpawnChance is the per-tick probability of spawning a shape.
	SpawnChance float64 `json:"spawnChance"`
	// MaxShapes caps the live set; spawning pauses while it is full.
	MaxShapes int `json:"maxShapes"`
	// Scale is the spawn scale range; ScaleSkew > 1 favours small shapes.
	Scale     Range   `json:"scale"`
	ScaleSkew float64 `json:"scaleSkew"`
	// RiseSpeed is divided by sqrt(scale) so larger shapes drift slower.
	RiseSpeed     Range   `json:"riseSpeed"`
	SwayAmplitude Range   `json:"swayAmplitude"`
	SwayFrequency Range   `json:"swayFrequency"`
	SpawnOffset   float64 `json:"spawnOffset"`
	Margin        float64 `json:"margin"`
	// HitRadius is multiplied by the shape scale.
	HitRadius float64 `json:"hitRadius"`
	// BreakImpulse bounds each velocity component at release.
	BreakImpulse float64       `json:"breakImpulse"`
	Physics      BrokenPhysics `json:"physics"`
	OpacityDecay float64       `json:"opacityDecay"`
	// FadeIn is the spawn fade duration in seconds; 0 disables it.
	FadeIn float32     `json:"fadeIn"`
	Curve  CurveConfig `json:"curve"`
}

// AlphaConfig controls the raster rejection sampler.
type AlphaConfig struct {
	// WorkingSize bounds the long side of the downsampled source.
	WorkingSize int `json:"workingSize"`
	// Threshold is the minimum accepted alpha, exclusive, in 0..255.
	Threshold uint8 `json:"threshold"`
	TargetCount int   `json:"targetCount"`
	// AttemptFactor times TargetCount is the attempt budget.
	AttemptFactor int `json:"attemptFactor"`
	// Fewer than MinSamples accepted particles triggers the fallback.
	MinSamples    int     `json:"minSamples"`
	FallbackCount int     `json:"fallbackCount"`
	FallbackText  string  `json:"fallbackText"`
	FallbackSize  float64 `json:"fallbackSize"`
	// Layers is the number of palette bands.
	Layers int   `json:"layers"`
	Size   Range `json:"size"`
	Alpha  Range `json:"alpha"`
}

// FieldConfig controls the flat, per-particle breakable swarm.
type FieldConfig struct {
	Vocabulary []string    `json:"vocabulary"`
	Sampler    AlphaConfig `json:"sampler"`
	// Extent is the fraction of min(width, height) covered by the unit box.
	Extent    float64 `json:"extent"`
	HitRadius float64 `json:"hitRadius"`
	// ImpulseX is the span of the horizontal impulse; ImpulseY its range.
	ImpulseX  float64       `json:"impulseX"`
	ImpulseY  Range         `json:"impulseY"`
	SpinSpeed float64       `json:"spinSpeed"`
	Physics   BrokenPhysics `json:"physics"`
	Margin    float64       `json:"margin"`
	// Palette is blended into Sampler.Layers bands for attached glyphs.
	Palette     []string `json:"palette"`
	BrokenColor string   `json:"brokenColor"`
}

// MeltConfig controls drip spawning and decay.
type MeltConfig struct {
	DripBatch    int     `json:"dripBatch"`
	Spread       float64 `json:"spread"`
	Speed        Range   `json:"speed"`
	Width        Range   `json:"width"`
	Life         float64 `json:"life"`
	LifeDecay    float64 `json:"lifeDecay"`
	SpeedDamping float64 `json:"speedDamping"`
	// HeightFactor times speed is the block height read each tick.
	HeightFactor float64 `json:"heightFactor"`
	// Jitter bounds the horizontal write offset in pixels.
	Jitter float64 `json:"jitter"`
}

// WindConfig adds Perlin turbulence to broken swarm particles.
type WindConfig struct {
	// Strength 0 disables wind.
	Strength float64 `json:"strength"`
	// Scale converts pixels to noise space.
	Scale float64 `json:"scale"`
	// Drift converts ticks to noise space.
	Drift float64 `json:"drift"`
	Seed  int64   `json:"seed"`
}

// SwarmKeywords is the default vocabulary for the rising swarm.
var SwarmKeywords = []string{
	"const", "let", "=>", "func", "{ }", "void", "return", "if", "class", "import",
	"from", "async", "await", "null", "true", "false", "0", "1", "< />", "[]",
}

// FieldKeywords is the default vocabulary for the raster field.
var FieldKeywords = []string{
	"const", "void", "let", "0x00", "=>", "func", "if", "return", "null", "NaN",
	"0", "1", "true", "false", "await", "async", "import", "ERROR", "404", "sys",
	"daem", "init", "mem",
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		Swarm: SwarmConfig{
			Vocabulary:    append([]string(nil), SwarmKeywords...),
			Palette:       []string{"#FFFFFF", "#FF3232"},
			SpawnChance:   0.012,
			MaxShapes:     48,
			Scale:         Range{0.5, 3.0},
			ScaleSkew:     1.5,
			RiseSpeed:     Range{0.5, 1.5},
			SwayAmplitude: Range{20, 60},
			SwayFrequency: Range{0.005, 0.02},
			SpawnOffset:   150,
			Margin:        200,
			HitRadius:     80,
			BreakImpulse:  1,
			Physics: BrokenPhysics{
				Gravity:         0.05,
				Friction:        0.98,
				FlutterStrength: 0.1,
				FlutterRate:     0.16,
				AlphaDecay:      0.008,
			},
			OpacityDecay: 0.005,
			FadeIn:       0.6,
			Curve: CurveConfig{
				Step:           0.3,
				TMax:           12 * math.Pi,
				WingDensity:    0.45,
				InnerThreshold: 1.5,
				CurveScale:     20,
				InnerSize:      Range{6, 10},
				OuterSize:      Range{10, 18},
				InnerAlpha:     0.4,
				OuterAlpha:     0.9,
				BodyCount:      6,
				BodySpacing:    8,
				BodyWidth:      4,
				BodySize:       10,
				BodyAlpha:      Range{0.3, 0.5},
				Tilt:           0.5,
				Spin:           0.1,
				BodySpin:       0.05,
			},
		},
		Field: FieldConfig{
			Vocabulary: append([]string(nil), FieldKeywords...),
			Sampler: AlphaConfig{
				WorkingSize:   128,
				Threshold:     30,
				TargetCount:   600,
				AttemptFactor: 10,
				MinSamples:    10,
				FallbackCount: 300,
				FallbackText:  "ERROR",
				FallbackSize:  12,
				Layers:        3,
				Size:          Range{8, 16},
				Alpha:         Range{0.6, 1.0},
			},
			Extent:    0.8,
			HitRadius: 80,
			ImpulseX:  15,
			ImpulseY:  Range{-10, 0},
			SpinSpeed: 0.1,
			Physics: BrokenPhysics{
				Gravity:    0.4,
				Friction:   0.95,
				AlphaDecay: 0.015,
			},
			Margin:      50,
			Palette:     []string{"#9FD8B8", "#DCFFE6"},
			BrokenColor: "#FF3232",
		},
		Melt: MeltConfig{
			DripBatch:    5,
			Spread:       60,
			Speed:        Range{4, 10},
			Width:        Range{20, 50},
			Life:         1.5,
			LifeDecay:    0.015,
			SpeedDamping: 0.99,
			HeightFactor: 2.5,
			Jitter:       1,
		},
		Wind: WindConfig{
			Strength: 0,
			Scale:    0.004,
			Drift:    0.01,
			Seed:     1,
		},
	}
}

// LoadConfig overlays JSON onto DefaultConfig. Fields absent from data keep
// their defaults.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("codewing: parse config: %w", err)
	}
	return cfg, nil
}
