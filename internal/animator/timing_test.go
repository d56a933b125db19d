package animator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypeDelay(t *testing.T) {
	timing := DefaultTiming()
	tests := []struct {
		r    rune
		f    float64
		want time.Duration
	}{
		{'a', 0, 30 * time.Millisecond},
		{'a', 0.5, 40 * time.Millisecond},
		{' ', 0.5, 20 * time.Millisecond},
		{',', 0, 15 * time.Millisecond},
		{'.', 0.5, 80 * time.Millisecond},
		{';', 1, 100 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, timing.typeDelay(tt.r, tt.f), "rune %q f=%v", tt.r, tt.f)
	}
}

func TestEraseDelay(t *testing.T) {
	timing := DefaultTiming()
	assert.Equal(t, 20*time.Millisecond, timing.eraseDelay(0))
	assert.Equal(t, 25*time.Millisecond, timing.eraseDelay(0.5))
}

func TestNormalized(t *testing.T) {
	got := Timing{TypeMin: 90 * time.Millisecond, TypeMax: 10 * time.Millisecond, Hold: time.Second}.Normalized()

	assert.Equal(t, 10*time.Millisecond, got.TypeMin)
	assert.Equal(t, 90*time.Millisecond, got.TypeMax)
	assert.Equal(t, time.Second, got.Hold)
	assert.Equal(t, DefaultTiming().Settle, got.Settle)
	assert.Equal(t, DefaultTiming().EraseMin, got.EraseMin)
}
