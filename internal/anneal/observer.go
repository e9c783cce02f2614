package anneal

// Epoch summarizes one outer iteration of the annealing loop.
type Epoch struct {
	Index       int     // zero-based outer iteration number
	Temperature float64 // temperature after the cooling decision
	Energy      float64 // energy of the current state at the end of the epoch
	Accepted    int     // candidates accepted during the epoch
	Rejected    int     // candidates rejected during the epoch
	Cooled      bool    // whether the epoch ended with a cooling step
}

// Observer receives a record at the end of every outer iteration.
// Implementations must not draw from the engine's randomness source.
type Observer interface {
	ObserveEpoch(Epoch)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Epoch)

func (f ObserverFunc) ObserveEpoch(e Epoch) { f(e) }

// Stats are cumulative counters for a run.
type Stats struct {
	Epochs       int
	Steps        int
	Accepted     int
	Rejected     int
	CoolingSteps int
}

// AcceptanceRate returns the fraction of trial moves that were accepted.
func (s Stats) AcceptanceRate() float64 {
	if s.Steps == 0 {
		return 0
	}
	return float64(s.Accepted) / float64(s.Steps)
}
