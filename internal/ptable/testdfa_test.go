package ptable

// testDFA is a minimal, hand-built DFA fixture implementing the DFA
// collaborator interface, used across this package's tests so they can
// exercise Builder without a real lexical-grammar compiler.
type testDFA struct {
	numStates   int
	start       StateIndex
	transitions map[StateIndex][]ByteTransition
	lexemes     map[StateIndex]LexemeHandle
}

func newTestDFA(numStates int) *testDFA {
	return &testDFA{
		numStates:   numStates,
		start:       0,
		transitions: map[StateIndex][]ByteTransition{},
		lexemes:     map[StateIndex]LexemeHandle{},
	}
}

func (d *testDFA) addTransition(src StateIndex, sym byte, dst StateIndex, producesLexeme bool) *testDFA {
	d.transitions[src] = append(d.transitions[src], ByteTransition{
		Sym:            sym,
		Dst:            dst,
		ProducesLexeme: producesLexeme,
	})
	return d
}

func (d *testDFA) setLexeme(s StateIndex, h LexemeHandle) *testDFA {
	d.lexemes[s] = h
	return d
}

func (d *testDFA) NumStates() int {
	return d.numStates
}

func (d *testDFA) Start() StateIndex {
	return d.start
}

func (d *testDFA) Transitions(src StateIndex) []ByteTransition {
	return d.transitions[src]
}

func (d *testDFA) LexemeAt(s StateIndex) (LexemeHandle, bool) {
	h, ok := d.lexemes[s]
	return h, ok
}

// foldBytes replays bs through the built Lexer's tables via merge-table
// composition, the way an external parallel-scan kernel would reduce a
// sequence of initial states left-to-right. It returns the resulting
// parallel-state index.
func foldBytes(l *Lexer, bs []byte) StateIndex {
	if len(bs) == 0 {
		return l.IdentityStateIndex
	}
	acc := l.InitialStates[bs[0]].ResultState
	for _, c := range bs[1:] {
		acc = l.MergeTable.Get(acc, l.InitialStates[c].ResultState).ResultState
	}
	return acc
}
