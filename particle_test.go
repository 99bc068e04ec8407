package codewing

import "testing"

func TestSortBySizeStable(t *testing.T) {
	ps := []Particle{
		{Text: "a", Size: 12},
		{Text: "b", Size: 8},
		{Text: "c", Size: 12},
		{Text: "d", Size: 8},
	}
	sortBySize(ps)
	got := ""
	for _, p := range ps {
		got += p.Text
	}
	if got != "bdac" {
		t.Errorf("order = %q, want %q", got, "bdac")
	}
}

func TestParticleVisible(t *testing.T) {
	tests := []struct {
		alpha float64
		want  bool
	}{
		{1, true},
		{0.001, true},
		{0, false},
		{-0.1, false},
	}
	for _, tt := range tests {
		p := Particle{Alpha: tt.alpha}
		if got := p.Visible(); got != tt.want {
			t.Errorf("Visible(alpha %v) = %v, want %v", tt.alpha, got, tt.want)
		}
	}
}
