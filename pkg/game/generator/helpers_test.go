package generator

// scriptedSource replays a fixed list of samples, then repeats fallback.
type scriptedSource struct {
	samples  []float64
	fallback float64
	drawn    int
}

func (s *scriptedSource) Float64() float64 {
	s.drawn++
	if s.drawn <= len(s.samples) {
		return s.samples[s.drawn-1]
	}
	return s.fallback
}

// constSource always returns the same sample.
func constSource(v float64) *scriptedSource {
	return &scriptedSource{fallback: v}
}
