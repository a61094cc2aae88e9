package coordinates

// Position represents a 2D coordinate
type Position struct {
	X, Y float64
}

// Layout holds node positions and their bounds.
type Layout struct {
	Coordinates map[int64]Position // gonum nodeID -> 2D position
	MinX, MaxX  float64
	MinY, MaxY  float64
}

// NewLayout wraps coords and computes their bounds.
func NewLayout(coords map[int64]Position) *Layout {
	l := &Layout{Coordinates: coords}

	first := true
	for _, p := range coords {
		if first {
			l.MinX, l.MaxX = p.X, p.X
			l.MinY, l.MaxY = p.Y, p.Y
			first = false
			continue
		}
		l.MinX = min(l.MinX, p.X)
		l.MaxX = max(l.MaxX, p.X)
		l.MinY = min(l.MinY, p.Y)
		l.MaxY = max(l.MaxY, p.Y)
	}
	return l
}

// Normalized returns the position of nodeID scaled into [0,1] on each
// axis. Unknown nodes and degenerate axes map to the centre.
func (l *Layout) Normalized(nodeID int64) Position {
	pos, exists := l.Coordinates[nodeID]
	if !exists {
		return Position{X: 0.5, Y: 0.5}
	}

	x, y := 0.5, 0.5
	if l.MaxX != l.MinX {
		x = (pos.X - l.MinX) / (l.MaxX - l.MinX)
	}
	if l.MaxY != l.MinY {
		y = (pos.Y - l.MinY) / (l.MaxY - l.MinY)
	}
	return Position{X: x, Y: y}
}

// Scaled returns the normalized position mapped onto [minVal, maxVal].
func (l *Layout) Scaled(nodeID int64, minVal, maxVal float64) Position {
	normalized := l.Normalized(nodeID)
	scale := maxVal - minVal

	return Position{
		X: minVal + normalized.X*scale,
		Y: minVal + normalized.Y*scale,
	}
}

func (l *Layout) Len() int { return len(l.Coordinates) }
