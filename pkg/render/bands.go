package render

import "fmt"

// A Band is the half-open row range [Start, End) rendered by one worker.
type Band struct {
	Start, End int
}

func (b Band) Rows() int {
	return b.End - b.Start
}

func (b Band) String() string {
	return fmt.Sprintf("[%d, %d)", b.Start, b.End)
}

// Bands splits height rows into parallelism contiguous bands of
// height/parallelism rows each. The last band absorbs the remainder, so
// every row is covered exactly once. When parallelism exceeds height all
// bands but the last are empty.
func Bands(height, parallelism int) []Band {
	size := height / parallelism

	bands := make([]Band, parallelism)
	for i := range bands {
		start := i * size
		end := start + size
		if i == parallelism-1 {
			end = height
		}
		bands[i] = Band{Start: start, End: end}
	}

	return bands
}
