package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
)

func TestShotChartDrawsEveryPoint(t *testing.T) {
	scatter := stats.ShotScatter{
		Made: []stats.ShotPoint{
			{X: 0, Y: 10, SeasonID: "2015-16", Label: "Layup Shot<br>Less Than 8 ft."},
			{X: -230, Y: 40, SeasonID: "2015-16", Label: "Jump Shot<br>24+ ft."},
		},
		Missed: []stats.ShotPoint{
			{X: 120, Y: 250, SeasonID: "2015-16", Label: "Pullup Jump shot<br>24+ ft."},
		},
	}

	var buf bytes.Buffer
	ShotChart(&buf, "Stephen Curry 2015-16", scatter)
	out := buf.String()

	if !strings.HasPrefix(out, "<?xml") {
		t.Fatalf("expected xml prolog, got %q", out[:20])
	}
	if !strings.Contains(out, "</svg>") {
		t.Fatalf("expected closed svg document")
	}
	if got := strings.Count(out, madeStyle); got != 2 {
		t.Fatalf("expected 2 made points, got %d", got)
	}
	if got := strings.Count(out, missedStyle); got != 1 {
		t.Fatalf("expected 1 missed point, got %d", got)
	}
	if !strings.Contains(out, "2 of 3 made (66.7%)") {
		t.Fatalf("expected shooting summary in footer")
	}
	if !strings.Contains(out, "Stephen Curry 2015-16") {
		t.Fatalf("expected title in output")
	}
}

func TestShotChartEmptyScatter(t *testing.T) {
	var buf bytes.Buffer
	ShotChart(&buf, "No shots", stats.ShotScatter{})
	out := buf.String()

	if strings.Contains(out, madeStyle) || strings.Contains(out, missedStyle) {
		t.Fatalf("expected no plotted points")
	}
	if !strings.Contains(out, "0 of 0 made (0.0%)") {
		t.Fatalf("expected zero summary, got %q", out)
	}
}

func TestCourtMapping(t *testing.T) {
	if got := px(-courtHalfWidth); got != margin {
		t.Fatalf("left sideline should map to margin, got %d", got)
	}
	if got := py(courtBaseline); got != margin {
		t.Fatalf("baseline should map to margin, got %d", got)
	}
	if px(0) != Width/2 {
		t.Fatalf("hoop should be centered, got %d want %d", px(0), Width/2)
	}
}
