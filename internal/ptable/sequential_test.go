package ptable

// sequentialScan is a reference oracle for property tests: it walks dfa
// byte by byte from START the way an ordinary, non-parallel lexer would
// (adapted from the single-mode core loop of a maximal-munch DFA walker),
// with none of a real runtime lexer's mode stack, token buffering, or
// error-recovery machinery — it only answers the one question
// final_states must also answer: "what lexeme, if any, does the DFA
// recognize after consuming exactly this byte sequence starting at
// START."
func sequentialScan(dfa DFA, bs []byte) (LexemeHandle, bool) {
	state := dfa.Start()
	for _, b := range bs {
		next, ok := stepDFA(dfa, state, b)
		if !ok {
			return LexemeHandleNil, false
		}
		state = next
	}
	return dfa.LexemeAt(state)
}

func stepDFA(dfa DFA, state StateIndex, b byte) (StateIndex, bool) {
	for _, tr := range dfa.Transitions(state) {
		if tr.Sym == b {
			return tr.Dst, true
		}
	}
	return 0, false
}
