// Package verification verifies that a randomized image kept the structure
// of the original cartridge image.
package verification

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/retroenv/retrogolib/log"
)

const (
	headerStart = 0x100
	headerEnd   = 0x150

	loggedDiffs = 10
)

// Report describes the differences between the original and the randomized
// image.
type Report struct {
	Size         int
	ChangedBytes int
}

// Verify checks that the randomized image has the size of the original and
// that the cartridge header is unchanged. It returns the number of modified
// bytes.
func Verify(logger *log.Logger, original, randomized []byte) (Report, error) {
	if len(original) != len(randomized) {
		return Report{}, fmt.Errorf("mismatched lengths, %d != %d", len(original), len(randomized))
	}

	end := min(headerEnd, len(original))
	if headerStart < end {
		if diffs := countDiffs(logger, original[headerStart:end], randomized[headerStart:end], headerStart); diffs > 0 {
			return Report{}, fmt.Errorf("cartridge header modified, %d offset mismatches", diffs)
		}
	}

	report := Report{
		Size:         len(original),
		ChangedBytes: countDiffs(logger, original, randomized, 0),
	}

	logger.Debug("Verified randomized image",
		log.String("size", humanize.IBytes(uint64(report.Size))),
		log.String("changed_bytes", humanize.Comma(int64(report.ChangedBytes))))
	return report, nil
}

func countDiffs(logger *log.Logger, input, output []byte, base int) int {
	var diffs int
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs <= loggedDiffs {
			logger.Debug("Offset modified",
				log.Hex("offset", base+i),
				log.Hex("original", input[i]),
				log.Hex("randomized", output[i]))
		}
	}
	return diffs
}
