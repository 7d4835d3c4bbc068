package layout

const (
	// DefaultRowHeight is the default height of one track row in pixels.
	DefaultRowHeight = 24
	// DefaultSpacing is the default vertical gap between track rows in pixels.
	DefaultSpacing = 2
)

// Geometry converts track assignments into vertical pixel positions.
// Non-positive fields fall back to the defaults, so the zero value is usable
// as-is. A zero gap cannot be requested; rows always keep at least the
// default spacing.
type Geometry struct {
	RowHeight int
	Spacing   int
}

func (g Geometry) rowHeight() int {
	if g.RowHeight <= 0 {
		return DefaultRowHeight
	}
	return g.RowHeight
}

func (g Geometry) spacing() int {
	if g.Spacing <= 0 {
		return DefaultSpacing
	}
	return g.Spacing
}

// TrackOffset returns the vertical offset of a track inside its cell.
func (g Geometry) TrackOffset(track int) int {
	return track * (g.rowHeight() + g.spacing())
}

// CellHeight returns the height a cell needs to fit trackCount stacked tracks.
// Empty cells still reserve one row.
func (g Geometry) CellHeight(trackCount int) int {
	if trackCount < 1 {
		trackCount = 1
	}
	return trackCount*g.rowHeight() + (trackCount-1)*g.spacing()
}
