package ptable

// ByteTransition is one outgoing edge of a DFA state: on byte Sym, move to
// Dst, optionally completing a lexeme.
type ByteTransition struct {
	Sym            byte
	Dst            StateIndex
	ProducesLexeme bool
}

// DFA is the external collaborator this package consumes. It is produced
// by a lexical-grammar compiler that is explicitly out of scope here: DFA
// construction from regular expressions, character classes, and lex modes
// is someone else's job. This package only lifts an already-built,
// deterministic DFA into parallel-scan tables.
type DFA interface {
	// NumStates returns N, the number of DFA states. States are numbered
	// 0..N-1.
	NumStates() int

	// Start returns the distinguished start state. Its slot in every
	// parallel state is the one whose ProducesLexeme flag is surfaced to
	// scan consumers.
	Start() StateIndex

	// Transitions returns the outgoing edges of src. Every Sym must be
	// concrete: the DFA is trusted to be deterministic, so at most one
	// ByteTransition per (src, Sym) pair may appear across the slice.
	Transitions(src StateIndex) []ByteTransition

	// LexemeAt returns the lexeme attached to state s, if any.
	LexemeAt(s StateIndex) (LexemeHandle, bool)
}
