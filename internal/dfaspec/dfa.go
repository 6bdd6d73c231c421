package dfaspec

import "github.com/nihei9/ptable/internal/ptable"

var _ ptable.DFA = (*DFA)(nil)

// DFA adapts a parsed DFA description document to ptable.DFA.
type DFA struct {
	numStates   int
	start       ptable.StateIndex
	transitions [][]ptable.ByteTransition
	lexemeNames map[ptable.LexemeHandle]string
	lexemeAt    map[ptable.StateIndex]ptable.LexemeHandle
}

func (d *DFA) NumStates() int {
	return d.numStates
}

func (d *DFA) Start() ptable.StateIndex {
	return d.start
}

func (d *DFA) Transitions(src ptable.StateIndex) []ptable.ByteTransition {
	return d.transitions[src]
}

func (d *DFA) LexemeAt(s ptable.StateIndex) (ptable.LexemeHandle, bool) {
	h, ok := d.lexemeAt[s]
	return h, ok
}

// LexemeName resolves a handle back to the human-readable name it was
// declared with. The core only ever deals in opaque LexemeHandle values;
// name lookup lives here because a CLI printing a table still needs
// readable output.
func (d *DFA) LexemeName(h ptable.LexemeHandle) string {
	return d.lexemeNames[h]
}
