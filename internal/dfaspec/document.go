// Package dfaspec supplies a minimal, concrete external collaborator for
// internal/ptable: it reads a human-authored YAML description of a
// deterministic byte-alphabet DFA and its lexemes, and adapts it into the
// ptable.DFA interface. The lexical grammar (regular expressions, lex
// modes, character classes) that would normally produce such a DFA is out
// of scope here, the same way it is out of scope for the core — this
// package only gives the CLI something concrete to build from.
package dfaspec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nihei9/ptable/internal/ptable"
	"github.com/nihei9/ptable/internal/specerr"
)

// transitionDoc is one row of the YAML document's transitions list.
type transitionDoc struct {
	Src            int           `yaml:"src"`
	Sym            symbolLiteral `yaml:"sym"`
	Dst            int           `yaml:"dst"`
	ProducesLexeme bool          `yaml:"produces_lexeme"`

	row int
}

// document is the top-level shape of a DFA description file.
type document struct {
	States      int             `yaml:"states"`
	Start       int             `yaml:"start"`
	Transitions []transitionDoc `yaml:"transitions"`
	Lexemes     map[int]string  `yaml:"lexemes"`
}

// symbolLiteral accepts either a small integer or a single-character
// string in YAML ("a" or 97 both mean byte 0x61), since DFA descriptions
// are usually easier to author with literal characters.
type symbolLiteral byte

func (s *symbolLiteral) UnmarshalYAML(node *yaml.Node) error {
	var asInt int
	if err := node.Decode(&asInt); err == nil {
		if asInt < 0 || asInt > ptable.MaxSym {
			return fmt.Errorf("symbol %d is out of range [0, %d]", asInt, ptable.MaxSym)
		}
		*s = symbolLiteral(asInt)
		return nil
	}

	var asString string
	if err := node.Decode(&asString); err != nil {
		return fmt.Errorf("symbol must be an integer or a single-character string")
	}
	if len(asString) != 1 {
		return fmt.Errorf("symbol string %q must be exactly one byte", asString)
	}
	*s = symbolLiteral(asString[0])
	return nil
}

// Load reads and validates a DFA description file at path, returning an
// adapted ptable.DFA. Every problem found is collected and returned
// together as a specerr.Errors rather than stopping at the first one.
func Load(path string) (ptable.DFA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := parse(path, data)
	if err != nil {
		// d is always nil here; returning it directly through the
		// interface-typed result would wrap a nil *DFA in a non-nil
		// interface value, so return a literal nil instead.
		return nil, err
	}
	return d, nil
}

func parse(path string, data []byte) (*DFA, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, specerr.Errors{{Cause: err, Path: path}}
	}

	var errs specerr.Errors
	addErr := func(row int, format string, args ...interface{}) {
		errs = append(errs, &specerr.Error{
			Cause: fmt.Errorf(format, args...),
			Path:  path,
			Row:   row,
		})
	}

	if doc.States <= 0 {
		addErr(0, "states must be a positive integer, got %d", doc.States)
	}
	if doc.Start < 0 || doc.Start >= doc.States {
		addErr(0, "start state %d is out of range [0, %d)", doc.Start, doc.States)
	}

	lexemeNames := map[ptable.LexemeHandle]string{}
	lexemeHandles := map[string]ptable.LexemeHandle{}
	lexemeAt := map[ptable.StateIndex]ptable.LexemeHandle{}
	for state, name := range doc.Lexemes {
		if state < 0 || state >= doc.States {
			addErr(0, "lexeme %q references out-of-range state %d", name, state)
			continue
		}
		h, ok := lexemeHandles[name]
		if !ok {
			h = ptable.LexemeHandle(len(lexemeNames) + int(ptable.LexemeHandleMin))
			lexemeHandles[name] = h
			lexemeNames[h] = name
		}
		lexemeAt[ptable.StateIndex(state)] = h
	}

	transitions := make([][]ptable.ByteTransition, doc.States)
	seen := map[[2]int]transitionDoc{}
	for row, tr := range doc.Transitions {
		if tr.Src < 0 || tr.Src >= doc.States {
			addErr(row+1, "transition references out-of-range source state %d", tr.Src)
			continue
		}
		if tr.Dst < 0 || tr.Dst >= doc.States {
			addErr(row+1, "transition references out-of-range destination state %d", tr.Dst)
			continue
		}
		key := [2]int{tr.Src, int(tr.Sym)}
		if prior, ok := seen[key]; ok {
			addErr(row+1, "state %d already has a transition on byte %d (first declared at row %d); DFA must be deterministic", tr.Src, tr.Sym, prior.row+1)
			continue
		}
		tr.row = row
		seen[key] = tr
		transitions[tr.Src] = append(transitions[tr.Src], ptable.ByteTransition{
			Sym:            byte(tr.Sym),
			Dst:            ptable.StateIndex(tr.Dst),
			ProducesLexeme: tr.ProducesLexeme,
		})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &DFA{
		numStates:   doc.States,
		start:       ptable.StateIndex(doc.Start),
		transitions: transitions,
		lexemeNames: lexemeNames,
		lexemeAt:    lexemeAt,
	}, nil
}
