package notation

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"
)

// Pins both renderings side by side: the canonical literal Format
// produces and the pretty form Interval.String draws with real infinity
// glyphs.
func TestRenderGolden(t *testing.T) {
	color.NoColor = true

	literals := []string{
		"[1,10]",
		"[1,10)//2",
		"(1,10)//2",
		"[1,2]//0.5",
		"[1,2]//-0.5",
		"[:neg_infinity,:infinity]",
		"(:neg_infinity,10]//-3",
		"[0,:infinity)//2",
		"[ -2 , -1 ] // 0.75",
		"[1e-3,1.5e2]//2.5e-1",
	}

	var out bytes.Buffer
	for _, lit := range literals {
		iv, err := Parse(lit)
		if err != nil {
			t.Fatalf("parse %q: %v", lit, err)
		}
		fmt.Fprintf(&out, "%s => %s | %s\n", lit, Format(iv), iv)
	}

	goldie.New(t).Assert(t, t.Name(), out.Bytes())
}
