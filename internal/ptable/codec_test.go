package ptable

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrips(t *testing.T) {
	dfa := newTestDFA(3).
		addTransition(0, 'a', 1, false).
		addTransition(1, 'b', 2, true).
		setLexeme(2, 42)

	l, err := NewBuilder(dfa).Build(context.Background())
	require.NoError(t, err)

	data, err := json.Marshal(l.Encode())
	require.NoError(t, err)

	var doc ArtifactDocument
	require.NoError(t, json.Unmarshal(data, &doc))

	restored := Decode(&doc)
	assert.Equal(t, l.MergeTable.Dense(), restored.MergeTable.Dense())
	assert.Equal(t, l.IdentityStateIndex, restored.IdentityStateIndex)
	assert.Equal(t, l.FinalStates, restored.FinalStates)
	assert.Equal(t, l.InitialStates, restored.InitialStates)
}
