// Package pdf renders brand sheets, one-page PDF summaries of an
// analyzed site's identity.
package pdf

import (
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/brandsight"
	"github.com/jung-kurt/gofpdf"
)

const (
	swatchSize  = 18.0
	swatchGap   = 4.0
	maxSwatches = 10
)

// Renderer renders brand sheets.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes a one-page A4 brand sheet for the profile to w. The
// signal supplies the raw palette and typography behind the profile's
// role assignments; a nil signal renders the profile alone.
func (r *Renderer) Render(profile *brandsight.BrandProfile, sig *brandsight.Signal, w io.Writer) error {
	if profile == nil {
		return brandsight.Errorf(brandsight.EINVALID, "profile required")
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 22)
	doc.CellFormat(0, 12, profile.BusinessName, "", 1, "L", false, 0, "")

	if profile.Tagline != "" {
		doc.SetFont("Helvetica", "I", 12)
		doc.SetTextColor(90, 90, 90)
		doc.CellFormat(0, 8, profile.Tagline, "", 1, "L", false, 0, "")
		doc.SetTextColor(0, 0, 0)
	}
	doc.Ln(4)

	if profile.BrandSummary != "" {
		r.section(doc, "Summary")
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(0, 5, profile.BrandSummary, "", "L", false)
		doc.Ln(2)
	}

	if len(profile.ToneOfVoice) > 0 {
		r.section(doc, "Tone of Voice")
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(0, 5, strings.Join(profile.ToneOfVoice, ", "), "", "L", false)
		doc.Ln(2)
	}

	r.section(doc, "Colors")
	r.swatches(doc, roleColors(profile))
	if sig != nil && len(sig.Colors) > 0 {
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(120, 120, 120)
		doc.MultiCell(0, 4, "Palette: "+strings.Join(sig.Colors, "  "), "", "L", false)
		doc.SetTextColor(0, 0, 0)
	}
	doc.Ln(2)

	r.section(doc, "Typography")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 5, "Headings: "+orUnknown(profile.Typography.HeadingFont), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 5, "Body: "+orUnknown(profile.Typography.BodyFont), "", 1, "L", false, 0, "")
	if profile.Typography.Description != "" {
		doc.MultiCell(0, 5, profile.Typography.Description, "", "L", false)
	}
	doc.Ln(2)

	if sig != nil && len(sig.Headings) > 0 {
		r.section(doc, "Key Messages")
		doc.SetFont("Helvetica", "", 10)
		for _, h := range sig.Headings {
			doc.MultiCell(0, 5, "- "+h, "", "L", false)
		}
		doc.Ln(2)
	}

	if profile.LogoPrompt != "" {
		r.section(doc, "Logo Direction")
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(0, 5, profile.LogoPrompt, "", "L", false)
	}

	return doc.Output(w)
}

func (r *Renderer) section(doc *gofpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

type namedColor struct {
	name string
	hex  string
}

func roleColors(profile *brandsight.BrandProfile) []namedColor {
	return []namedColor{
		{"Primary", profile.Colors.Primary},
		{"Secondary", profile.Colors.Secondary},
		{"Accent", profile.Colors.Accent},
		{"Background", profile.Colors.Background},
		{"Text", profile.Colors.Text},
	}
}

// swatches draws one labeled square per role color. Colors that do not
// parse as hex are skipped.
func (r *Renderer) swatches(doc *gofpdf.Fpdf, colors []namedColor) {
	x := doc.GetX()
	y := doc.GetY()
	drawn := 0
	for _, c := range colors {
		red, green, blue, ok := hexRGB(c.hex)
		if !ok {
			continue
		}
		doc.SetFillColor(red, green, blue)
		doc.SetDrawColor(200, 200, 200)
		doc.Rect(x, y, swatchSize, swatchSize, "FD")
		doc.SetFont("Helvetica", "", 7)
		doc.SetXY(x, y+swatchSize+1)
		doc.CellFormat(swatchSize, 3, c.name, "", 0, "C", false, 0, "")
		doc.SetXY(x, y+swatchSize+4)
		doc.CellFormat(swatchSize, 3, c.hex, "", 0, "C", false, 0, "")
		x += swatchSize + swatchGap
		drawn++
		if drawn >= maxSwatches {
			break
		}
	}
	doc.SetY(y + swatchSize + 8)
	doc.SetX(10)
}

// hexRGB parses #rgb and #rrggbb colors.
func hexRGB(s string) (red, green, blue int, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff), true
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
