// Package state provides a purely functional state-transition abstraction.
//
// A State[S, A] is a computation that consumes a prior state and produces a
// next state plus a result. It is a plain function value with no mutable
// identity: composing two transitions yields a new transition, and running
// one never touches shared memory. The state is threaded explicitly through
// return values, so two derived computations can never observe each other's
// state by aliasing.
//
// Basic usage:
//
//	counter := state.State[int, string](func(n int) (int, string) {
//	    return n + 1, fmt.Sprintf("call #%d", n)
//	})
//	next, label := counter(0) // next == 1, label == "call #0"
package state

// State is a pure transition: given a state of type S, it produces the next
// state and a value of type A. Call it directly to observe both outputs, or
// use Run to keep only the value.
type State[S, A any] func(S) (S, A)

// Pure returns a transition that leaves the state untouched and produces a.
func Pure[S, A any](a A) State[S, A] {
	return func(s S) (S, A) {
		return s, a
	}
}

// Map runs st, then applies f to the produced value. The state transition is
// exactly st's; f sees only the value channel.
//
// Map satisfies the functor laws: Map(st, identity) behaves as st, and
// Map(Map(st, f), h) behaves as Map(st, h∘f).
func Map[S, A, B any](st State[S, A], f func(A) B) State[S, B] {
	return func(s S) (S, B) {
		s1, a := st(s)
		return s1, f(a)
	}
}

// Map2 runs sa on the incoming state, feeds the resulting state to sb, and
// combines both values with f. The ordering is load-bearing: sb always runs
// on sa's output state, so sequentially combined transitions never reuse a
// state value.
func Map2[S, A, B, C any](sa State[S, A], sb State[S, B], f func(A, B) C) State[S, C] {
	return func(s S) (S, C) {
		s1, a := sa(s)
		s2, b := sb(s1)
		return s2, f(a, b)
	}
}

// FlatMap runs sa, then runs the transition returned by f(a) on sa's output
// state. This is the data-dependent composition: the second transition may
// be chosen by the first one's value.
func FlatMap[S, A, B any](sa State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) (S, B) {
		s1, a := sa(s)
		return f(a)(s1)
	}
}

// Get reflects the current state into the value channel without changing it.
func Get[S any]() State[S, S] {
	return func(s S) (S, S) {
		return s, s
	}
}

// Sequence combines st with itself n times via Map2, producing the n values
// in draw order. Panics if n is negative.
func Sequence[S, A any](n int, st State[S, A]) State[S, []A] {
	if n < 0 {
		panic("state: Sequence n must be non-negative")
	}
	acc := Pure[S, []A](nil)
	for i := 0; i < n; i++ {
		acc = Map2(acc, st, func(xs []A, x A) []A {
			return append(xs, x)
		})
	}
	return acc
}

// Run executes the transition from s0 and returns only the produced value.
// Call the State directly when the final state matters.
func (st State[S, A]) Run(s0 S) A {
	_, a := st(s0)
	return a
}
