package notes_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nzaccagnino/devnotes/internal/notes"
)

func TestPickColor(t *testing.T) {
	tests := []struct {
		name string
		fam  notes.ColorFamily
		want string
	}{
		{
			name: "prefers 500",
			fam:  notes.ColorFamily{Shades: map[string]string{"500": "#500", "600": "#600", "50": "#050"}},
			want: "#500",
		},
		{
			name: "walks the preference list",
			fam:  notes.ColorFamily{Shades: map[string]string{"700": "#700", "200": "#200"}},
			want: "#700",
		},
		{
			name: "falls back to the lowest shade key",
			fam:  notes.ColorFamily{Shades: map[string]string{"900": "#900", "800": "#800"}},
			want: "#800",
		},
		{
			name: "empty family",
			fam:  notes.ColorFamily{},
			want: notes.FallbackColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notes.PickColor(tt.fam, notes.ShadePreference))
		})
	}
}

func TestRandomColor_AlwaysInPalette(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for range 200 {
		c := notes.RandomColor(r)
		assert.True(t, notes.InPalette(c), "color %s not in palette", c)
	}
	assert.True(t, notes.InPalette(notes.RandomColor(nil)))
}

func TestRandomColor_UsesShade500(t *testing.T) {
	primary := map[string]bool{}
	for _, fam := range notes.Palette {
		primary[fam.Shades["500"]] = true
	}
	r := rand.New(rand.NewPCG(3, 5))
	for range 50 {
		assert.True(t, primary[notes.RandomColor(r)])
	}
}

func TestPalette(t *testing.T) {
	assert.Len(t, notes.Palette, 17)
	assert.False(t, notes.InPalette("#000000"))
	assert.True(t, notes.InPalette("#2196f3"))
}
