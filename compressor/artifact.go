package compressor

import "github.com/nihei9/ptable/internal/ptable"

// CompressMergeTable row-deduplicates t via UniqueEntriesTable.
func CompressMergeTable(t *ptable.MergeTable) (*UniqueEntriesTable, error) {
	orig, err := NewOriginalTableFromMergeTable(t)
	if err != nil {
		return nil, err
	}
	rows := NewUniqueEntriesTable()
	if err := rows.Compress(orig); err != nil {
		return nil, err
	}
	return rows, nil
}

// Artifact is a compressed counterpart to ptable.ArtifactDocument: the
// same initial states, identity index, and final states, but with the
// merge table carried row-deduplicated instead of dense.
type Artifact struct {
	BuildID            string                `json:"build_id"`
	InitialStates      []ptable.Transition   `json:"initial_states"`
	MergeTableSize     int                   `json:"merge_table_size"`
	MergeTable         *UniqueEntriesTable   `json:"merge_table"`
	IdentityStateIndex ptable.StateIndex     `json:"identity_state_index"`
	FinalStates        []ptable.LexemeHandle `json:"final_states"`
}

// Encode builds a compressed Artifact from a built Lexer.
func Encode(l *ptable.Lexer) (*Artifact, error) {
	rows, err := CompressMergeTable(l.MergeTable)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		BuildID:            l.BuildID.String(),
		InitialStates:      l.InitialStates[:],
		MergeTableSize:     l.MergeTable.Size(),
		MergeTable:         rows,
		IdentityStateIndex: l.IdentityStateIndex,
		FinalStates:        l.FinalStates,
	}, nil
}

// Decode rebuilds a Lexer from an Artifact produced by Encode.
func Decode(doc *Artifact) *ptable.Lexer {
	size := doc.MergeTableSize
	dense := make([]ptable.Transition, size*size)
	for first := 0; first < size; first++ {
		for second := 0; second < size; second++ {
			// UniqueEntriesTable addresses (row, col) = (second, first):
			// see NewOriginalTableFromMergeTable.
			tr, err := doc.MergeTable.Lookup(second, first)
			if err != nil {
				continue
			}
			dense[first+second*size] = tr
		}
	}

	l := &ptable.Lexer{
		MergeTable:         ptable.NewMergeTableFromDense(dense, size),
		IdentityStateIndex: doc.IdentityStateIndex,
		FinalStates:        doc.FinalStates,
	}
	copy(l.InitialStates[:], doc.InitialStates)
	return l
}
