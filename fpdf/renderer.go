// Package fpdf renders content briefs as PDF documents.
package fpdf

import (
	"fmt"
	"io"

	"github.com/fwojciec/brief"
	"github.com/go-pdf/fpdf"
)

// Ensure Renderer implements brief.Renderer.
var _ brief.Renderer = (*Renderer)(nil)

const fontFamily = "Helvetica"

// Font sizes in points. Headings are bold.
var headingSizes = map[int]float64{
	1: 18,
	2: 16,
	3: 14,
	4: 12,
}

const paragraphSize = 11

// Renderer lays out brief blocks on A4 pages.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the PDF to w. Text is translated to the core font code page;
// characters outside it are replaced.
func (r *Renderer) Render(w io.Writer, keyword string, blocks []brief.Block) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle(brief.BriefTitle(keyword), true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	heading(pdf, 1, tr(brief.BriefTitle(keyword)))
	for _, b := range blocks {
		switch b.Kind {
		case brief.BlockHeading:
			heading(pdf, b.Level, tr(b.Text))
		default:
			pdf.SetFont(fontFamily, "", paragraphSize)
			pdf.MultiCell(0, 5.5, tr(b.Text), "", "L", false)
			pdf.Ln(2)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func heading(pdf *fpdf.Fpdf, level int, text string) {
	size, ok := headingSizes[level]
	if !ok {
		size = headingSizes[4]
	}
	pdf.Ln(3)
	pdf.SetFont(fontFamily, "B", size)
	pdf.MultiCell(0, size*0.5, text, "", "L", false)
	pdf.Ln(1)
}
