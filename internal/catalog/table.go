// Package catalog describes the data tables of every supported game
// generation and maps cartridge titles to them.
package catalog

import (
	"fmt"

	"github.com/retroenv/gbrandomizer/internal/errs"
)

// NoField marks a structured table without a species id byte.
const NoField = -1

// StructuredTable is a table at a fixed absolute offset. The first byte of
// the table holds the record count, the records follow with a fixed stride.
type StructuredTable struct {
	Name    string
	Offset  int   // absolute offset of the leading count byte
	Stride  int   // byte length of one record
	Species int   // position of the species id byte inside a record, or NoField
	Fields  []int // positions of the rewritten fields inside a record
}

// Records returns the absolute offsets of all records of the table.
func (t StructuredTable) Records(image []byte) ([]int, error) {
	if t.Offset < 0 || t.Offset >= len(image) {
		return nil, fmt.Errorf("%w: %s table offset 0x%X outside of image",
			errs.ErrUnsupportedImage, t.Name, t.Offset)
	}

	count := int(image[t.Offset])
	start := t.Offset + 1
	if start+count*t.Stride > len(image) {
		return nil, fmt.Errorf("%w: %s table with %d records exceeds image",
			errs.ErrUnsupportedImage, t.Name, count)
	}

	records := make([]int, count)
	for i := range records {
		records[i] = start + i*t.Stride
	}
	return records, nil
}

// Size returns the number of bytes used by the table for the given count.
func (t StructuredTable) Size(count int) int {
	return 1 + count*t.Stride
}
