package animator

import "time"

// Timing holds every delay the driver waits on.
type Timing struct {
	TypeMin  time.Duration // per-character typing delay range
	TypeMax  time.Duration
	LineGap  time.Duration // pause after a typed line
	EraseMin time.Duration // per-character erase delay range
	EraseMax time.Duration

	EraseLineGap time.Duration // pause after an erased line
	ClearPause   time.Duration // pause after the last erased line, before typing
	Hold         time.Duration // dwell on the fully typed snippet
	InterSnippet time.Duration // wait before the next cycle starts
	Settle       time.Duration // wait after a resize before restarting
}

// DefaultTiming returns the landing page cadence.
func DefaultTiming() Timing {
	return Timing{
		TypeMin:      30 * time.Millisecond,
		TypeMax:      50 * time.Millisecond,
		LineGap:      100 * time.Millisecond,
		EraseMin:     20 * time.Millisecond,
		EraseMax:     30 * time.Millisecond,
		EraseLineGap: 50 * time.Millisecond,
		ClearPause:   800 * time.Millisecond,
		Hold:         3 * time.Second,
		InterSnippet: 500 * time.Millisecond,
		Settle:       250 * time.Millisecond,
	}
}

// Multipliers applied to the per-character typing delay, keyed on the
// character just typed.
const (
	quickFactor = 0.5 // after space or comma
	pauseFactor = 2.0 // after period or semicolon
)

// Normalized fills zero fields from DefaultTiming and orders min/max pairs.
func (t Timing) Normalized() Timing {
	def := DefaultTiming()
	fill := func(v *time.Duration, d time.Duration) {
		if *v <= 0 {
			*v = d
		}
	}
	fill(&t.TypeMin, def.TypeMin)
	fill(&t.TypeMax, def.TypeMax)
	fill(&t.LineGap, def.LineGap)
	fill(&t.EraseMin, def.EraseMin)
	fill(&t.EraseMax, def.EraseMax)
	fill(&t.EraseLineGap, def.EraseLineGap)
	fill(&t.ClearPause, def.ClearPause)
	fill(&t.Hold, def.Hold)
	fill(&t.InterSnippet, def.InterSnippet)
	fill(&t.Settle, def.Settle)
	if t.TypeMax < t.TypeMin {
		t.TypeMin, t.TypeMax = t.TypeMax, t.TypeMin
	}
	if t.EraseMax < t.EraseMin {
		t.EraseMin, t.EraseMax = t.EraseMax, t.EraseMin
	}
	return t
}

func between(lo, hi time.Duration, f float64) time.Duration {
	return lo + time.Duration(float64(hi-lo)*f)
}

// typeDelay returns the wait after typing r.
func (t Timing) typeDelay(r rune, f float64) time.Duration {
	d := between(t.TypeMin, t.TypeMax, f)
	switch r {
	case ' ', ',':
		return time.Duration(float64(d) * quickFactor)
	case '.', ';':
		return time.Duration(float64(d) * pauseFactor)
	default:
		return d
	}
}

func (t Timing) eraseDelay(f float64) time.Duration {
	return between(t.EraseMin, t.EraseMax, f)
}
