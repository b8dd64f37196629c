package scene

// DefaultStep is the per-frame rotation increment in radians.
const DefaultStep = 0.01

// Stepper decides how far the cube turns on each frame.
type Stepper interface {
	// Step returns the non-negative rotation increment for the frame stamped
	// timestampMs.
	Step(timestampMs float64) float64
	// Reset forgets timing history, e.g. after a pause.
	Reset()
}

// FixedStep turns by the same amount every frame, so speed follows the
// display refresh rate.
type FixedStep float64

func (s FixedStep) Step(float64) float64 {
	if s < 0 {
		return 0
	}
	return float64(s)
}

func (s FixedStep) Reset() {}

// ElapsedStep turns at Rate radians per second of frame time.
type ElapsedStep struct {
	Rate float64

	last   float64
	primed bool
}

// NewElapsedStep returns a stepper turning rate radians per second.
func NewElapsedStep(rate float64) *ElapsedStep {
	return &ElapsedStep{Rate: rate}
}

func (s *ElapsedStep) Step(timestampMs float64) float64 {
	if !s.primed {
		s.primed = true
		s.last = timestampMs
		return 0
	}
	dt := timestampMs - s.last
	s.last = timestampMs
	if dt <= 0 || s.Rate <= 0 {
		return 0
	}
	return s.Rate * dt / 1000
}

func (s *ElapsedStep) Reset() {
	s.primed = false
}
