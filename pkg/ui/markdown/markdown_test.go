package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExamplesListsEveryDomain(t *testing.T) {
	doc := Examples()

	for _, want := range []string{
		"`guess 1722628800`",
		"`guess time 1722628800`",
		"`guess duration 1h30m`",
		"`guess size 1.5 GiB`",
		"`guess number 0xFF`",
		"`guess color #ff5733`",
		"`guess permission rwxr-xr-x`",
	} {
		assert.Contains(t, doc, want)
	}
}

func TestRenderNoTTY(t *testing.T) {
	r := &Renderer{Style: "notty", Width: 80}
	out := r.Render("# Title\n\nsome *text*\n")

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
}

func TestRenderBadStyleFallsBack(t *testing.T) {
	r := &Renderer{Style: "/does/not/exist.json"}
	src := "# Title\n"
	assert.Equal(t, src, r.Render(src))
}
