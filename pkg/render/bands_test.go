package render

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestBands(t *testing.T) {
	tcs := []struct {
		name                string
		height, parallelism int
		want                []Band
	}{
		{"even", 8, 4, []Band{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"remainder in last band", 10, 4, []Band{{0, 2}, {2, 4}, {4, 6}, {6, 10}}},
		{"single worker", 7, 1, []Band{{0, 7}}},
		{"more workers than rows", 2, 4, []Band{{0, 0}, {0, 0}, {0, 0}, {0, 2}}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Bands(tc.height, tc.parallelism))
		})
	}
}

func TestBands_Coverage(t *testing.T) {
	for height := 1; height <= 50; height++ {
		for parallelism := 1; parallelism <= 12; parallelism++ {
			bands := Bands(height, parallelism)
			assert.Len(t, bands, parallelism)

			next := 0
			for _, b := range bands {
				assert.Equal(t, next, b.Start, "height %d parallelism %d", height, parallelism)
				assert.LessOrEqual(t, b.Start, b.End)
				next = b.End
			}
			assert.Equal(t, height, next)
		}
	}
}
