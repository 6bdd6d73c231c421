// Package compressor builds space-reduced encodings of a saturated merge
// table. A dense K×K table of Transitions is the easiest thing to index,
// but it is rarely the smallest: composing enough parallel states usually
// produces many rows that behave identically against every column, so
// storing each distinct row once and sharing it across the rows that
// repeat it is normally a real win.
package compressor

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/nihei9/ptable/internal/ptable"
)

// OriginalTable is a row-major rowCount×colCount table of Transitions (a
// merge table's export is the square K×K case), the uncompressed
// input every Compressor in this package starts from.
type OriginalTable struct {
	entries  []ptable.Transition
	rowCount int
	colCount int
}

// NewOriginalTable wraps a flat, row-major slice of Transitions as a
// rowCount x colCount table, where rowCount = len(entries)/colCount.
func NewOriginalTable(entries []ptable.Transition, colCount int) (*OriginalTable, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("entries is empty")
	}
	if colCount <= 0 {
		return nil, fmt.Errorf("colCount must be >=1")
	}
	if len(entries)%colCount != 0 {
		return nil, fmt.Errorf("entries length or column count are incorrect; entries length: %v, column count: %v", len(entries), colCount)
	}

	return &OriginalTable{
		entries:  entries,
		rowCount: len(entries) / colCount,
		colCount: colCount,
	}, nil
}

// NewOriginalTableFromMergeTable wraps a merge table's dense export. Dense's
// row-major layout addresses a cell as first + second*size; that already
// matches this package's row-major convention with row = second and
// col = first, so no transposition is needed beyond swapping argument
// order at the lookup site (see Decode in artifact.go).
func NewOriginalTableFromMergeTable(t *ptable.MergeTable) (*OriginalTable, error) {
	return NewOriginalTable(t.Dense(), t.Size())
}

// Compressor is the common shape of this package's table encodings: built
// from an OriginalTable, queried the same way the original was addressed.
type Compressor interface {
	Compress(orig *OriginalTable) error
	Lookup(row, col int) (ptable.Transition, error)
	OriginalTableSize() (int, int)
}

var (
	_ Compressor = &UniqueEntriesTable{}
	_ Compressor = &RowDisplacementTable{}
)

// UniqueEntriesTable deduplicates whole rows: rows with identical
// Transition sequences share one copy of UniqueEntries, and RowNums maps
// each original row back to its slot in that deduplicated set.
type UniqueEntriesTable struct {
	UniqueEntries    []ptable.Transition
	RowNums          []int
	OriginalRowCount int
	OriginalColCount int
}

func NewUniqueEntriesTable() *UniqueEntriesTable {
	return &UniqueEntriesTable{}
}

func (tab *UniqueEntriesTable) Lookup(row, col int) (ptable.Transition, error) {
	if row < 0 || row >= tab.OriginalRowCount || col < 0 || col >= tab.OriginalColCount {
		return ptable.Transition{}, fmt.Errorf("indexes are out of range: [%v, %v]", row, col)
	}
	return tab.UniqueEntries[tab.RowNums[row]*tab.OriginalColCount+col], nil
}

func (tab *UniqueEntriesTable) OriginalTableSize() (int, int) {
	return tab.OriginalRowCount, tab.OriginalColCount
}

func (tab *UniqueEntriesTable) Compress(orig *OriginalTable) error {
	var uniqueEntries []ptable.Transition
	rowNums := make([]int, orig.rowCount)
	hash2RowNum := map[string]int{}
	nextRowNum := 0
	for row := 0; row < orig.rowCount; row++ {
		rowHash := hashRow(orig.entries[row*orig.colCount : (row+1)*orig.colCount])
		rowNum, ok := hash2RowNum[rowHash]
		if !ok {
			rowNum = nextRowNum
			nextRowNum++
			hash2RowNum[rowHash] = rowNum
			start := row * orig.colCount
			uniqueEntries = append(uniqueEntries, orig.entries[start:start+orig.colCount]...)
		}
		rowNums[row] = rowNum
	}

	tab.UniqueEntries = uniqueEntries
	tab.RowNums = rowNums
	tab.OriginalRowCount = orig.rowCount
	tab.OriginalColCount = orig.colCount

	return nil
}

// hashRow folds a row of Transitions into a structural key: each cell
// contributes its ResultState as a varint plus one byte for
// ProducesLexeme, the same encoding ParallelState.HashKey uses for a
// single state.
func hashRow(row []ptable.Transition) string {
	buf := make([]byte, 0, len(row)*9)
	b := make([]byte, 8)
	for _, tr := range row {
		n := binary.PutUvarint(b, uint64(tr.ResultState))
		buf = append(buf, b[:n]...)
		if tr.ProducesLexeme {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}
	return string(buf)
}

// ForbiddenValue marks a Bounds slot that no row claims.
const ForbiddenValue = -1

// RowDisplacementTable packs sparse rows into a single shared array by
// displacing each row until its non-empty cells land on otherwise-unclaimed
// slots (a classic sparse-parsing-table technique). It pays off when most
// cells equal EmptyValue; a fully-dense table (every cell populated, as a
// saturated merge table's cells always are) gets no benefit from it over
// UniqueEntriesTable, which is why CompressMergeTable uses the latter.
type RowDisplacementTable struct {
	OriginalRowCount int
	OriginalColCount int
	EmptyValue       ptable.Transition
	Entries          []ptable.Transition
	Bounds           []int
	RowDisplacement  []int
}

func NewRowDisplacementTable(emptyValue ptable.Transition) *RowDisplacementTable {
	return &RowDisplacementTable{
		EmptyValue: emptyValue,
	}
}

func (tab *RowDisplacementTable) Lookup(row int, col int) (ptable.Transition, error) {
	if row < 0 || row >= tab.OriginalRowCount || col < 0 || col >= tab.OriginalColCount {
		return tab.EmptyValue, fmt.Errorf("indexes are out of range: [%v, %v]", row, col)
	}
	d := tab.RowDisplacement[row]
	if tab.Bounds[d+col] != row {
		return tab.EmptyValue, nil
	}
	return tab.Entries[d+col], nil
}

func (tab *RowDisplacementTable) OriginalTableSize() (int, int) {
	return tab.OriginalRowCount, tab.OriginalColCount
}

type rowInfo struct {
	rowNum        int
	nonEmptyCount int
	nonEmptyCol   []int
}

func (tab *RowDisplacementTable) Compress(orig *OriginalTable) error {
	rowInfos := make([]rowInfo, orig.rowCount)
	{
		row := 0
		col := 0
		rowInfos[0].rowNum = 0
		for _, v := range orig.entries {
			if col == orig.colCount {
				row++
				col = 0
				rowInfos[row].rowNum = row
			}
			if v != tab.EmptyValue {
				rowInfos[row].nonEmptyCount++
				rowInfos[row].nonEmptyCol = append(rowInfos[row].nonEmptyCol, col)
			}
			col++
		}

		sort.SliceStable(rowInfos, func(i int, j int) bool {
			return rowInfos[i].nonEmptyCount > rowInfos[j].nonEmptyCount
		})
	}

	origEntriesLen := len(orig.entries)
	entries := make([]ptable.Transition, origEntriesLen)
	bounds := make([]int, origEntriesLen)
	resultBottom := orig.colCount
	rowDisplacement := make([]int, orig.rowCount)
	{
		for i := 0; i < origEntriesLen; i++ {
			entries[i] = tab.EmptyValue
			bounds[i] = ForbiddenValue
		}

		nextRowDisplacement := 0
		for _, rInfo := range rowInfos {
			if rInfo.nonEmptyCount <= 0 {
				continue
			}

			for {
				isOverlapped := false
				for _, col := range rInfo.nonEmptyCol {
					if entries[nextRowDisplacement+col] == tab.EmptyValue {
						continue
					}
					nextRowDisplacement++
					isOverlapped = true
					break
				}
				if isOverlapped {
					continue
				}

				rowDisplacement[rInfo.rowNum] = nextRowDisplacement
				for _, col := range rInfo.nonEmptyCol {
					entries[nextRowDisplacement+col] = orig.entries[(rInfo.rowNum*orig.colCount)+col]
					bounds[nextRowDisplacement+col] = rInfo.rowNum
				}
				resultBottom = nextRowDisplacement + orig.colCount
				nextRowDisplacement++
				break
			}
		}
	}

	tab.OriginalRowCount = orig.rowCount
	tab.OriginalColCount = orig.colCount
	tab.Entries = entries[:resultBottom]
	tab.Bounds = bounds[:resultBottom]
	tab.RowDisplacement = rowDisplacement

	return nil
}
