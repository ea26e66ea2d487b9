package diagnosis

import "testing"

func TestStrengthFor(t *testing.T) {
	tests := []struct {
		n    int
		want Strength
	}{
		{0, StrengthWeak},
		{1, StrengthWeak},
		{2, StrengthWeak},
		{3, StrengthModerate},
		{4, StrengthModerate},
		{5, StrengthStrong},
		{9, StrengthStrong},
	}
	for _, tt := range tests {
		if got := StrengthFor(tt.n); got != tt.want {
			t.Errorf("StrengthFor(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
