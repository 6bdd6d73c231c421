package ptable

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/projectdiscovery/gologger"
)

// BuildError reports a fatal condition in the builder's input: a
// non-deterministic DFA or an out-of-range index. Per the core's error
// model, these are assertion failures over a DFA the builder is entitled
// to trust, not recoverable conditions — callers are expected to treat a
// non-nil error from Build as fatal to the whole build.
type BuildError struct {
	msg string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("ptable: %s", e.msg)
}

func fatalf(format string, args ...interface{}) *BuildError {
	return &BuildError{msg: fmt.Sprintf(format, args...)}
}

// Builder runs the saturation algorithm described in the package
// documentation: seed one ParallelState per byte from the DFA, add an
// identity state, saturate the set under pairwise merge, and derive the
// final-state table from the saturated set.
type Builder struct {
	dfa DFA
}

// NewBuilder returns a Builder over dfa. dfa is not copied; the builder
// reads it only during Build.
func NewBuilder(dfa DFA) *Builder {
	return &Builder{dfa: dfa}
}

// Build runs the construction to completion and returns the resulting
// immutable Lexer artifact. It never returns a partial artifact: on error
// the returned Lexer is nil.
//
// ctx is checked once per saturation sweep, not per merge — a sweep is
// this algorithm's unit of progress, so that is also the unit of
// cancellation granularity. Cancellation is a courtesy for callers
// embedding this in a larger pipeline; standalone use needs nothing more
// than context.Background().
func (b *Builder) Build(ctx context.Context) (*Lexer, error) {
	n := b.dfa.NumStates()
	if n <= 0 {
		return nil, fatalf("DFA must have at least one state, got %d", n)
	}
	start := b.dfa.Start()
	if int(start) < 0 || int(start) >= n {
		return nil, fatalf("DFA start state %d is out of range [0, %d)", start, n)
	}

	buildID := uuid.New()
	gologger.Verbose().Msgf("ptable: build %s: seeding %d initial states over %d DFA states", buildID, NumSymbols, n)

	initial := make([]*ParallelState, NumSymbols)
	for sym := range initial {
		initial[sym] = NewParallelState(n)
	}
	for src := 0; src < n; src++ {
		for _, tr := range b.dfa.Transitions(StateIndex(src)) {
			if int(tr.Dst) < 0 || int(tr.Dst) >= n {
				return nil, fatalf("transition (%d, %d) targets out-of-range state %d", src, tr.Sym, tr.Dst)
			}
			p := initial[tr.Sym]
			existing := p.Get(StateIndex(src))
			next := Transition{ResultState: tr.Dst, ProducesLexeme: tr.ProducesLexeme}
			if existing.ResultState != p.RejectIndex() && existing != next {
				return nil, fatalf("DFA is non-deterministic: state %d has more than one transition on byte %d", src, tr.Sym)
			}
			p.Set(StateIndex(src), next)
		}
	}

	table := NewMergeTable()
	interner := NewInterner(table)

	lexer := &Lexer{
		BuildID: buildID,
	}
	for sym := 0; sym < NumSymbols; sym++ {
		idx := interner.Intern(initial[sym])
		lexer.InitialStates[sym] = Transition{
			ResultState:    idx,
			ProducesLexeme: initial[sym].Get(start).ProducesLexeme,
		}
	}

	identity := NewParallelState(n)
	for s := 0; s < n; s++ {
		identity.Set(StateIndex(s), Transition{ResultState: StateIndex(s), ProducesLexeme: false})
	}
	lexer.IdentityStateIndex = interner.Intern(identity)

	sweep := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		grew := false
		for i := 0; i < interner.Len(); i++ {
			for j := 0; j < interner.Len(); j++ {
				if b.merge(interner, table, lexer.IdentityStateIndex, start, StateIndex(i), StateIndex(j)) {
					grew = true
				}
				if b.merge(interner, table, lexer.IdentityStateIndex, start, StateIndex(j), StateIndex(i)) {
					grew = true
				}
			}
		}
		sweep++
		// Every 20th sweep, not every non-multiple of 20: the inverse of
		// this condition silently suppresses nearly all progress output.
		if sweep%20 == 0 {
			gologger.Verbose().Msgf("ptable: build %s: sweep %d, %d states interned", buildID, sweep, interner.Len())
		}
		if !grew {
			break
		}
	}

	k := interner.Len()
	lexer.MergeTable = table
	lexer.FinalStates = make([]LexemeHandle, k)
	for i := 0; i < k; i++ {
		p := interner.State(StateIndex(i))
		dst := p.Get(start).ResultState
		if dst == p.RejectIndex() {
			continue
		}
		if h, ok := b.dfa.LexemeAt(dst); ok {
			lexer.FinalStates[i] = h
		}
	}

	gologger.Info().Msgf("ptable: build %s: done, %d parallel states, %d sweeps", buildID, k, sweep)

	return lexer, nil
}

// merge computes merge_table[i, j], interning a newly composed state if
// needed, and reports whether interning grew the state set.
//
// Identity compositions are special-cased: naive composition would read
// the identity operand's own (always false) ProducesLexeme at START,
// silently erasing lexeme boundaries. Passing the non-identity operand
// through unchanged keeps both operands' boundary information intact
// while remaining consistent with "read ProducesLexeme from the result's
// START slot" once the shortcut is taken.
func (b *Builder) merge(interner *Interner, table *MergeTable, identity, start, i, j StateIndex) bool {
	var result StateIndex
	grew := false
	switch {
	case i == identity:
		result = j
	case j == identity:
		result = i
	default:
		before := interner.Len()
		scratch := interner.State(i).Clone()
		scratch.Merge(interner.State(j))
		result = interner.Intern(scratch)
		grew = interner.Len() > before
	}
	produces := interner.State(result).Get(start).ProducesLexeme
	table.Set(i, j, Transition{ResultState: result, ProducesLexeme: produces})
	return grew
}
