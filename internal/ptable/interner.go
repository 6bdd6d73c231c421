package ptable

// Interner assigns dense, insertion-ordered indices to ParallelStates,
// deduping by structural equality. It keeps two parallel containers — a
// hash map from structural key to index, for O(1) dedup lookups, and an
// index-keyed slice of the canonical states themselves, for O(1)
// index→state lookups during merge — with the invariant that states[i]
// is the ParallelState interned as index i.
type Interner struct {
	byKey  map[string]StateIndex
	states []*ParallelState
	table  *MergeTable
}

// NewInterner returns an empty Interner that signals growth to table as
// new states are interned.
func NewInterner(table *MergeTable) *Interner {
	return &Interner{
		byKey: map[string]StateIndex{},
		table: table,
	}
}

// Intern returns p's index, assigning the next sequential index and
// appending p to the state list if an equal ParallelState has not been
// seen before. Once assigned, an index never changes.
func (in *Interner) Intern(p *ParallelState) StateIndex {
	key := p.HashKey()
	if idx, ok := in.byKey[key]; ok {
		return idx
	}
	idx := StateIndex(len(in.states))
	in.states = append(in.states, p)
	in.byKey[key] = idx
	in.table.Resize(len(in.states))
	return idx
}

// State returns the canonical ParallelState interned at index i.
func (in *Interner) State(i StateIndex) *ParallelState {
	return in.states[i]
}

// Len returns the number of distinct ParallelStates interned so far.
func (in *Interner) Len() int {
	return len(in.states)
}
