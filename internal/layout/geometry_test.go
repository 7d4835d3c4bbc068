package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schedm/schedm/internal/layout"
)

func TestGeometry(t *testing.T) {
	tests := map[string]struct {
		geometry      layout.Geometry
		track         int
		trackCount    int
		expOffset     int
		expCellHeight int
	}{
		"zero value geometry uses defaults": {
			geometry:      layout.Geometry{},
			track:         0,
			trackCount:    1,
			expOffset:     0,
			expCellHeight: 24,
		},
		"second track is offset by one row plus spacing": {
			geometry:      layout.Geometry{},
			track:         1,
			trackCount:    2,
			expOffset:     26,
			expCellHeight: 50,
		},
		"empty cells still reserve one row": {
			geometry:      layout.Geometry{},
			track:         0,
			trackCount:    0,
			expOffset:     0,
			expCellHeight: 24,
		},
		"explicit zero fields fall back to the defaults": {
			geometry:      layout.Geometry{RowHeight: 0, Spacing: 0},
			track:         1,
			trackCount:    2,
			expOffset:     26,
			expCellHeight: 50,
		},
		"custom row height and spacing": {
			geometry:      layout.Geometry{RowHeight: 30, Spacing: 5},
			track:         2,
			trackCount:    3,
			expOffset:     70,
			expCellHeight: 100,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(test.expOffset, test.geometry.TrackOffset(test.track))
			assert.Equal(test.expCellHeight, test.geometry.CellHeight(test.trackCount))
		})
	}
}
