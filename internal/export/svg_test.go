package export

import (
	"strings"
	"testing"

	"github.com/san-kum/geosim/internal/stress"
)

func TestPathSVG(t *testing.T) {
	states := []stress.State{
		{P: 100, Q: 0},
		{P: 150, Q: 30},
		{P: 200, Q: 75},
	}

	svg := PathSVG(states, 400, 300, "")
	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "<polyline") {
		t.Error("missing polyline element")
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("unterminated document")
	}
}

func TestPathSVGTooShort(t *testing.T) {
	if svg := PathSVG([]stress.State{{P: 100}}, 400, 300, ""); svg != "" {
		t.Error("expected empty output for a single-point path")
	}
}
