package ptable

import "encoding/binary"

// ParallelState is a total function from DFA state to Transition: "if the
// DFA were in state s and the character class this value represents were
// consumed, the DFA would move to Get(s).ResultState, completing a lexeme
// iff Get(s).ProducesLexeme."
//
// It is sized n+1, where n is the DFA's state count: entries 0..n-1 answer
// the question for real DFA states, and entry n is the reserved REJECT
// slot, pre-filled to a self-loop (RejectIndex(), false) so REJECT behaves
// as an absorbing state under Merge without any branching in the hot path.
type ParallelState struct {
	n       int
	entries []Transition
}

// NewParallelState allocates a blank ParallelState over n DFA states. Every
// entry, including the reserved REJECT slot, defaults to (RejectIndex(),
// false).
func NewParallelState(n int) *ParallelState {
	p := &ParallelState{
		n:       n,
		entries: make([]Transition, n+1),
	}
	reject := Transition{ResultState: StateIndex(n), ProducesLexeme: false}
	for s := range p.entries {
		p.entries[s] = reject
	}
	return p
}

// RejectIndex is the sentinel StateIndex this ParallelState uses to mean
// "no transition." It is distinct from every real DFA state (0..n-1).
func (p *ParallelState) RejectIndex() StateIndex {
	return StateIndex(p.n)
}

// Get returns the Transition recorded for DFA state s.
func (p *ParallelState) Get(s StateIndex) Transition {
	return p.entries[s]
}

// Set records the Transition for DFA state s.
func (p *ParallelState) Set(s StateIndex, t Transition) {
	p.entries[s] = t
}

// Clone returns an independent copy, for use as merge scratch space.
func (p *ParallelState) Clone() *ParallelState {
	c := &ParallelState{
		n:       p.n,
		entries: make([]Transition, len(p.entries)),
	}
	copy(c.entries, p.entries)
	return c
}

// Merge performs in-place left-composition with other: for every index s,
// if t = self.Get(s), then self.Set(s, other.Get(t.ResultState)).
//
// Treating a ParallelState as the function φ(s) = Transition over DFA
// states, self.Merge(other) computes other∘self (apply self first, then
// other) — the semantics of reading two character classes left to right.
// Because the REJECT slot is a pre-filled self-loop, a REJECT produced by
// self is carried through unchanged: other.Get(RejectIndex()) is also a
// self-loop on other's own REJECT slot, which merge then writes back into
// self's REJECT slot, preserving the absorbing property.
func (p *ParallelState) Merge(other *ParallelState) {
	prev := make([]Transition, len(p.entries))
	copy(prev, p.entries)
	for s, t := range prev {
		p.entries[s] = other.entries[t.ResultState]
	}
}

// Equal reports whether p and other record identical transitions for every
// DFA state, REJECT slot included.
func (p *ParallelState) Equal(other *ParallelState) bool {
	if p.n != other.n {
		return false
	}
	for s, t := range p.entries {
		if other.entries[s] != t {
			return false
		}
	}
	return true
}

// HashKey returns a byte-folded structural key suitable for use as a map
// key, sufficient to dedup ParallelStates during interning.
func (p *ParallelState) HashKey() string {
	buf := make([]byte, 0, len(p.entries)*9)
	b := make([]byte, 8)
	for _, t := range p.entries {
		n := binary.PutUvarint(b, uint64(t.ResultState))
		buf = append(buf, b[:n]...)
		if t.ProducesLexeme {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}
	// This byte sequence is derived from transition values, not text, so
	// it is not a well-formed UTF-8 string; it is used only as a map key.
	return string(buf)
}
