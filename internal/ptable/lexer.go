package ptable

import (
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Lexer is the immutable artifact produced by Builder.Build. It is built
// once and never mutated afterward, so it may be read concurrently by any
// number of consumers without synchronization. No runtime lexing operation
// lives here: an external parallel-scan kernel consumes these tables.
type Lexer struct {
	// InitialStates[c] pairs the interned parallel-state index for byte c
	// with the ProducesLexeme flag observed at that state's START slot.
	InitialStates [NumSymbols]Transition

	// MergeTable[i, j] holds the interned index of the parallel state
	// obtained by composing states i and j, and whether that composition
	// produces a lexeme at START.
	MergeTable *MergeTable

	// IdentityStateIndex is the interned index of the monoid's unit
	// state.
	IdentityStateIndex StateIndex

	// FinalStates[i] is the lexeme recognized when the DFA, started at
	// START, ends in the state that parallel-state i takes START into.
	// LexemeHandleNil means no lexeme.
	FinalStates []LexemeHandle

	// BuildID correlates this artifact with the progress lines the
	// builder logged while producing it; it carries no semantic meaning
	// for the tables themselves.
	BuildID uuid.UUID
}

// SizeReport summarizes an artifact's cardinalities, for diagnostics. It is
// not part of the monoid core; it exists so a CLI or operator can judge
// whether a built table is a reasonable size before shipping it to a
// downstream scan kernel.
type SizeReport struct {
	BuildID             string
	NumParallelStates   int
	NumSymbols          int
	MergeTableSize      int
	MergeTableCells     int
	EstimatedBytes      uint64
	EstimatedBytesHuman string
}

// transitionSize is the in-memory footprint of one Transition: one int
// (platform word size, estimated at 8 bytes) plus one bool.
const transitionSize = 9

// SizeReport computes the artifact's cardinalities and a rough memory
// footprint estimate, dominated by MergeTable's K×K cells.
func (l *Lexer) SizeReport() SizeReport {
	k := l.MergeTable.Size()
	cells := k * k
	estimated := uint64(cells)*transitionSize + uint64(len(l.FinalStates))*transitionSize + uint64(NumSymbols)*transitionSize

	return SizeReport{
		BuildID:             l.BuildID.String(),
		NumParallelStates:   k,
		NumSymbols:          NumSymbols,
		MergeTableSize:      k,
		MergeTableCells:     cells,
		EstimatedBytes:      estimated,
		EstimatedBytesHuman: humanize.Bytes(estimated),
	}
}
