package ptable

// ArtifactDocument is the on-disk JSON shape of a built Lexer: initial
// states, a dense merge table, the identity index, and the final-states
// table. It exists so the CLI has something concrete to marshal and
// unmarshal; the core itself has no notion of a wire format.
//
// This is the dense encoding. Package compressor offers a row-deduplicated
// alternative built directly on top of this package's exported types
// (MergeTable.Dense, NewMergeTableFromDense), for callers that want a
// smaller artifact at the cost of an extra lookup indirection.
type ArtifactDocument struct {
	BuildID            string         `json:"build_id"`
	InitialStates      []Transition   `json:"initial_states"`
	MergeTableSize     int            `json:"merge_table_size"`
	MergeTableEntries  []Transition   `json:"merge_table_entries"`
	IdentityStateIndex StateIndex     `json:"identity_state_index"`
	FinalStates        []LexemeHandle `json:"final_states"`
}

// Encode converts the artifact to its JSON-serializable form.
func (l *Lexer) Encode() *ArtifactDocument {
	return &ArtifactDocument{
		BuildID:            l.BuildID.String(),
		InitialStates:      l.InitialStates[:],
		MergeTableSize:     l.MergeTable.Size(),
		MergeTableEntries:  l.MergeTable.Dense(),
		IdentityStateIndex: l.IdentityStateIndex,
		FinalStates:        l.FinalStates,
	}
}

// Decode rebuilds a Lexer from a previously encoded document. BuildID is
// not round-tripped as a uuid.UUID (a malformed or absent ID should not
// prevent loading an otherwise-valid artifact); callers that need it
// parsed can do so from ArtifactDocument.BuildID.
func Decode(doc *ArtifactDocument) *Lexer {
	l := &Lexer{
		MergeTable:         NewMergeTableFromDense(doc.MergeTableEntries, doc.MergeTableSize),
		IdentityStateIndex: doc.IdentityStateIndex,
		FinalStates:        doc.FinalStates,
	}
	copy(l.InitialStates[:], doc.InitialStates)
	return l
}
