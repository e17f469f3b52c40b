// Package render draws shot scatter views as SVG on a half-court diagram.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/preston-bernstein/nba-shotchart-service/internal/aggregate"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
)

// Court geometry in provider units (tenths of a foot), hoop at the origin.
const (
	courtHalfWidth  = 250
	courtBaseline   = -47
	courtHalfCourt  = 423
	margin          = 10
	footerHeight    = 60
	hoopRadius      = 7
	paintHalfWidth  = 80
	freeThrowLine   = 143
	freeThrowRadius = 60
	restrictedArea  = 40
	threeCornerX    = 220
	threeCornerY    = 89
	threeRadius     = 237
	pointRadius     = 4
)

const (
	courtStyle  = "fill:none;stroke:#555;stroke-width:2"
	madeStyle   = "fill:#2e7d32;fill-opacity:0.6"
	missedStyle = "fill:#c62828;fill-opacity:0.35"
	textStyle   = "font-family:sans-serif;font-size:16px;fill:#444"
)

// Width and Height are the rendered canvas size in pixels.
const (
	Width  = 2*courtHalfWidth + 2*margin
	Height = courtHalfCourt - courtBaseline + 2*margin + footerHeight
)

// ShotChart writes scatter as a standalone SVG document. title is printed under the court.
func ShotChart(w io.Writer, title string, scatter stats.ShotScatter) {
	canvas := svg.New(w)
	canvas.Start(Width, Height)
	canvas.Title(title)
	canvas.Rect(0, 0, Width, Height, "fill:white")

	drawCourt(canvas)

	canvas.Gid("missed")
	for _, p := range scatter.Missed {
		canvas.Circle(px(p.X), py(p.Y), pointRadius, missedStyle)
	}
	canvas.Gend()

	canvas.Gid("made")
	for _, p := range scatter.Made {
		canvas.Circle(px(p.X), py(p.Y), pointRadius, madeStyle)
	}
	canvas.Gend()

	attempts := scatter.Total()
	made := len(scatter.Made)
	footer := py(courtHalfCourt) + margin
	canvas.Gstyle(textStyle)
	canvas.Text(margin, footer+20, title)
	canvas.Text(margin, footer+44, fmt.Sprintf("%d of %d made (%.1f%%)", made, attempts, aggregate.Ratio(made, attempts)*100))
	canvas.Gend()

	canvas.End()
}

func drawCourt(canvas *svg.SVG) {
	canvas.Gstyle(courtStyle)
	canvas.Rect(px(-courtHalfWidth), py(courtBaseline), 2*courtHalfWidth, courtHalfCourt-courtBaseline)
	canvas.Circle(px(0), py(0), hoopRadius)
	canvas.Line(px(-30), py(-7), px(30), py(-7))
	canvas.Rect(px(-paintHalfWidth), py(courtBaseline), 2*paintHalfWidth, freeThrowLine-courtBaseline)
	canvas.Circle(px(0), py(freeThrowLine), freeThrowRadius)
	canvas.Arc(px(-restrictedArea), py(0), restrictedArea, restrictedArea, 0, false, false, px(restrictedArea), py(0))
	canvas.Line(px(-threeCornerX), py(courtBaseline), px(-threeCornerX), py(threeCornerY))
	canvas.Line(px(threeCornerX), py(courtBaseline), px(threeCornerX), py(threeCornerY))
	canvas.Arc(px(-threeCornerX), py(threeCornerY), threeRadius, threeRadius, 0, false, false, px(threeCornerX), py(threeCornerY))
	canvas.Gend()
}

func px(x int) int {
	return x + courtHalfWidth + margin
}

func py(y int) int {
	return y - courtBaseline + margin
}
