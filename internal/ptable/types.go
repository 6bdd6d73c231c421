// Package ptable builds a parallel-scan lexer table from a deterministic,
// byte-alphabet DFA: a monoid of per-byte state mappings ("parallel states")
// that a data-parallel prefix-scan can compose in O(log n) depth to
// tokenize an input without walking the DFA one byte at a time.
package ptable

import "fmt"

// MaxSym is the largest input byte value the core handles (inclusive). The
// alphabet is flat bytes, never Unicode codepoints.
const MaxSym = 255

// NumSymbols is the size of the byte alphabet, 0..MaxSym inclusive.
const NumSymbols = MaxSym + 1

// StateIndex identifies either a DFA state or, in the contexts described
// below, an interned parallel-state index. The two index spaces are never
// mixed within a single value: a DFA has NumStates() real states numbered
// 0..NumStates()-1, and ParallelState reserves one extra slot past that
// range to represent REJECT (see ParallelState).
type StateIndex int

// LexemeHandle is an opaque handle to a lexeme attached to a DFA accepting
// state. LexemeHandleNil means "no lexeme" and is never a valid handle
// returned by a DFA's LexemeAt.
type LexemeHandle int

const (
	LexemeHandleNil LexemeHandle = 0
	LexemeHandleMin LexemeHandle = 1
)

func (h LexemeHandle) Int() int {
	return int(h)
}

func (h LexemeHandle) IsNil() bool {
	return h == LexemeHandleNil
}

// Transition is the value pair a parallel state stores per DFA state: the
// state it leads to and whether taking it completes a lexeme. It is also
// reused, per the external interface, to pair an interned parallel-state
// index with the produces-lexeme flag observed at that state's START slot
// (see Lexer.InitialStates and MergeTable).
type Transition struct {
	ResultState    StateIndex `json:"result_state"`
	ProducesLexeme bool       `json:"produces_lexeme"`
}

func (t Transition) String() string {
	return fmt.Sprintf("(%d, %v)", t.ResultState, t.ProducesLexeme)
}
