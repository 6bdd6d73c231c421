package compressor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihei9/ptable/internal/ptable"
)

func TestCompressor_Compress(t *testing.T) {
	empty := ptable.Transition{}                                 // the empty value
	a := ptable.Transition{ResultState: 1}                       // a non-empty value
	b := ptable.Transition{ResultState: 2, ProducesLexeme: true} // a distinct non-empty value

	allCompressors := func() []Compressor {
		return []Compressor{
			NewUniqueEntriesTable(),
			NewRowDisplacementTable(empty),
		}
	}

	tests := []struct {
		name        string
		original    []ptable.Transition
		rowCount    int
		colCount    int
		compressors []Compressor
	}{
		{
			name: "all rows identical",
			original: []ptable.Transition{
				a, a, a, a, a,
				a, a, a, a, a,
				a, a, a, a, a,
			},
			rowCount:    3,
			colCount:    5,
			compressors: allCompressors(),
		},
		{
			name: "all rows empty",
			original: []ptable.Transition{
				empty, empty, empty, empty, empty,
				empty, empty, empty, empty, empty,
				empty, empty, empty, empty, empty,
			},
			rowCount:    3,
			colCount:    5,
			compressors: allCompressors(),
		},
		{
			name: "some rows empty",
			original: []ptable.Transition{
				a, a, a, a, a,
				empty, empty, empty, empty, empty,
				b, b, b, b, b,
			},
			rowCount:    3,
			colCount:    5,
			compressors: allCompressors(),
		},
		{
			name: "sparse, one empty cell per row",
			original: []ptable.Transition{
				a, empty, a, a, a,
				a, a, empty, a, a,
				a, a, a, empty, a,
			},
			rowCount:    3,
			colCount:    5,
			compressors: allCompressors(),
		},
	}
	for i, tt := range tests {
		for _, comp := range tt.compressors {
			t.Run(fmt.Sprintf("%T %s", comp, tt.name), func(t *testing.T) {
				dup := make([]ptable.Transition, len(tt.original))
				copy(dup, tt.original)

				orig, err := NewOriginalTable(tt.original, tt.colCount)
				require.NoError(t, err)
				require.NoError(t, comp.Compress(orig))

				rowCount, colCount := comp.OriginalTableSize()
				assert.Equal(t, tt.rowCount, rowCount)
				assert.Equal(t, tt.colCount, colCount)

				for r := 0; r < tt.rowCount; r++ {
					for c := 0; c < tt.colCount; c++ {
						v, err := comp.Lookup(r, c)
						require.NoError(t, err)
						assert.Equal(t, tt.original[r*tt.colCount+c], v, "(%v, %v)", r, c)
					}
				}

				_, err = comp.Lookup(0, -1)
				assert.Error(t, err)
				_, err = comp.Lookup(-1, 0)
				assert.Error(t, err)
				_, err = comp.Lookup(rowCount-1, colCount)
				assert.Error(t, err)
				_, err = comp.Lookup(rowCount, colCount-1)
				assert.Error(t, err)

				// The compressor must not mutate the original table.
				assert.Equal(t, dup, tt.original, "case #%v", i)
			})
		}
	}
}

func TestUniqueEntriesTable_DeduplicatesRepeatedRows(t *testing.T) {
	a := ptable.Transition{ResultState: 1}
	b := ptable.Transition{ResultState: 2, ProducesLexeme: true}

	orig, err := NewOriginalTable([]ptable.Transition{
		a, b,
		a, b,
		b, a,
	}, 2)
	require.NoError(t, err)

	tab := NewUniqueEntriesTable()
	require.NoError(t, tab.Compress(orig))

	// Rows 0 and 1 are identical and must share a slot; row 2 differs and
	// gets its own.
	assert.Equal(t, tab.RowNums[0], tab.RowNums[1])
	assert.NotEqual(t, tab.RowNums[0], tab.RowNums[2])
	assert.Len(t, tab.UniqueEntries, 4)
}
