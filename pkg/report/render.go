package report

import (
	"fmt"
	"image/color"
	"os"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/gilchrisn/netsci-analysis/pkg/coordinates"
	"github.com/gilchrisn/netsci-analysis/pkg/metrics"
)

var (
	edgeColor = color.Gray{Y: 160}
	nodeColor = color.RGBA{R: 66, G: 133, B: 244, A: 255}
)

// Renderer draws graphs to PNG files.
type Renderer struct {
	Width, Height vg.Length

	// Node radius range. Without scores every node uses MinRadius.
	MinRadius, MaxRadius vg.Length

	// Width of the colour bar strip drawn for scored renders.
	BarWidth vg.Length

	logger zerolog.Logger
}

// NewRenderer returns a renderer producing images of the given size in
// centimetres.
func NewRenderer(widthCM, heightCM float64, logger zerolog.Logger) *Renderer {
	return &Renderer{
		Width:     vg.Length(widthCM) * vg.Centimeter,
		Height:    vg.Length(heightCM) * vg.Centimeter,
		MinRadius: vg.Points(2),
		MaxRadius: vg.Points(8),
		BarWidth:  vg.Length(2) * vg.Centimeter,
		logger:    logger,
	}
}

// Render draws g at the positions in l and writes a PNG to path. With
// non-empty scores node size and colour encode the score and a colour bar
// is drawn beside the graph.
func (r *Renderer) Render(path string, g graph.Graph, l *coordinates.Layout, scores map[int64]float64) error {
	ids := metrics.SortedIDs(g)
	if len(ids) == 0 {
		return fmt.Errorf("nothing to render")
	}

	p := plot.New()
	p.HideAxes()

	edges := &edgeSegments{Style: draw.LineStyle{Color: edgeColor, Width: vg.Points(0.3)}}
	for _, id := range ids {
		to := g.From(id)
		for to.Next() {
			tid := to.Node().ID()
			if _, directed := g.(graph.Directed); !directed && tid < id {
				continue
			}
			edges.Segments = append(edges.Segments, [2]plotter.XY{position(l, id), position(l, tid)})
		}
	}
	p.Add(edges)

	xys := make(plotter.XYs, len(ids))
	for i, id := range ids {
		xys[i] = position(l, id)
	}
	nodes, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("failed to build node scatter: %w", err)
	}

	var cmap palette.ColorMap
	if len(scores) > 0 {
		scale := coordinates.NewScoreScale(scores)
		cmap = moreland.Kindlmann()
		cmap.SetMin(scale.MinScore)
		cmap.SetMax(scale.MaxScore)
		if scale.MaxScore == scale.MinScore {
			cmap.SetMax(scale.MinScore + 1)
		}
		nodes.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			id := ids[i]
			c, err := cmap.At(scores[id])
			if err != nil {
				c = nodeColor
			}
			radius := scale.Radius(id, float64(r.MinRadius), float64(r.MaxRadius))
			return draw.GlyphStyle{Color: c, Radius: vg.Length(radius), Shape: draw.CircleGlyph{}}
		}
	} else {
		nodes.GlyphStyle = draw.GlyphStyle{Color: nodeColor, Radius: r.MinRadius, Shape: draw.CircleGlyph{}}
	}
	p.Add(nodes)

	img := vgimg.New(r.Width, r.Height)
	dc := draw.New(img)
	if cmap == nil {
		p.Draw(dc)
	} else {
		p.Draw(draw.Crop(dc, 0, -r.BarWidth, 0, 0))

		bar := plot.New()
		bar.HideX()
		bar.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true})
		bar.Draw(draw.Crop(dc, r.Width-r.BarWidth, 0, 0, 0))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	defer f.Close()

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	r.logger.Info().
		Str("path", path).
		Int("nodes", len(ids)).
		Int("edges", len(edges.Segments)).
		Msg("Rendered graph")
	return nil
}

func position(l *coordinates.Layout, id int64) plotter.XY {
	pos := l.Normalized(id)
	return plotter.XY{X: pos.X, Y: pos.Y}
}

// edgeSegments draws each edge as a straight line between its endpoints.
type edgeSegments struct {
	Segments [][2]plotter.XY
	Style    draw.LineStyle
}

func (e *edgeSegments) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, s := range e.Segments {
		c.StrokeLine2(e.Style, trX(s[0].X), trY(s[0].Y), trX(s[1].X), trY(s[1].Y))
	}
}

func (e *edgeSegments) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(e.Segments) == 0 {
		return 0, 1, 0, 1
	}
	xmin, xmax = e.Segments[0][0].X, e.Segments[0][0].X
	ymin, ymax = e.Segments[0][0].Y, e.Segments[0][0].Y
	for _, s := range e.Segments {
		for _, pt := range s {
			xmin, xmax = min(xmin, pt.X), max(xmax, pt.X)
			ymin, ymax = min(ymin, pt.Y), max(ymax, pt.Y)
		}
	}
	return xmin, xmax, ymin, ymax
}

var _ plot.Plotter = (*edgeSegments)(nil)
