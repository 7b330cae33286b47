package mock

import (
	"io"

	"github.com/fwojciec/brief"
)

var _ brief.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of brief.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, keyword string, blocks []brief.Block) error
}

func (r *Renderer) Render(w io.Writer, keyword string, blocks []brief.Block) error {
	return r.RenderFn(w, keyword, blocks)
}
