package anneal

// Problem is the capability an optimization domain exposes to the engine.
// S is opaque to the engine: it is only copied, passed back to the problem,
// and compared through Energy.
type Problem[S any] interface {
	// InitialState returns a valid starting point. It may be randomized.
	InitialState() S

	// Energy returns the cost of a state, lower is better. It must be
	// defined for every state reachable through Neighbor.
	Energy(state S) float64

	// Neighbor returns a new state close to the given one. It must not
	// mutate its argument and must keep the state valid for the domain.
	Neighbor(state S) S
}

// Rand is the randomness source shared by the engine and the problems it
// drives. *math/rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
	// Intn returns a uniform value in [0, n)
	Intn(n int) int
}

// Funcs adapts three plain functions to the Problem interface.
type Funcs[S any] struct {
	Initial func() S
	Cost    func(S) float64
	Next    func(S) S
}

func (f Funcs[S]) InitialState() S        { return f.Initial() }
func (f Funcs[S]) Energy(state S) float64 { return f.Cost(state) }
func (f Funcs[S]) Neighbor(state S) S     { return f.Next(state) }
