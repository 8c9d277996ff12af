package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	canvasWidth = 600
	canvasPad   = 16
	lineHeight  = 18
	rowHeight   = 24

	// ImageScale is the factor the PNG is enlarged by after drawing.
	ImageScale = 2
)

var (
	brandRed  = color.NRGBA{220, 38, 38, 255}
	paper     = color.NRGBA{255, 255, 255, 255}
	ink       = color.NRGBA{17, 24, 39, 255}
	mutedInk  = color.NRGBA{75, 85, 99, 255}
	ruleColor = color.NRGBA{229, 231, 235, 255}
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

type paintOp struct {
	rect image.Rectangle
	fill color.Color
	text string
	dot  fixed.Point26_6
}

// painter records drawing operations top to bottom so the canvas height is
// known before anything is rasterized.
type painter struct {
	face   font.Face
	ascent int
	y      int
	ops    []paintOp
}

func newPainter() *painter {
	face := basicfont.Face7x13
	return &painter{face: face, ascent: face.Metrics().Ascent.Ceil()}
}

// band opens a full-width filled area; close it with the returned func once
// its content has been laid out.
func (p *painter) band(c color.Color) func() {
	idx := len(p.ops)
	top := p.y
	p.ops = append(p.ops, paintOp{fill: c})
	return func() {
		p.ops[idx].rect = image.Rect(0, top, canvasWidth, p.y)
	}
}

func (p *painter) rule(x0, x1 int) {
	p.ops = append(p.ops, paintOp{rect: image.Rect(x0, p.y-1, x1, p.y), fill: ruleColor})
}

func (p *painter) width(s string) int {
	return font.MeasureString(p.face, s).Ceil()
}

// text places s inside the column [x0, x1) on the current line, trimming it
// to fit.
func (p *painter) text(s string, c color.Color, x0, x1 int, a align) {
	s = p.fit(s, x1-x0)
	if s == "" {
		return
	}
	x := x0
	switch a {
	case alignCenter:
		x = x0 + (x1-x0-p.width(s))/2
	case alignRight:
		x = x1 - p.width(s)
	}
	baseline := p.y + (lineHeight-p.ascent)/2 + p.ascent - 2
	p.ops = append(p.ops, paintOp{text: s, fill: c, dot: fixed.P(x, baseline)})
}

func (p *painter) fit(s string, maxWidth int) string {
	if p.width(s) <= maxWidth {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && p.width(string(r)+"...") > maxWidth {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

// wrap breaks s into lines no wider than maxWidth.
func (p *painter) wrap(s string, maxWidth int) []string {
	var lines []string
	var cur string
	for _, word := range strings.Fields(s) {
		next := word
		if cur != "" {
			next = cur + " " + word
		}
		if cur != "" && p.width(next) > maxWidth {
			lines = append(lines, cur)
			next = word
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func (p *painter) advance(h int) { p.y += h }

func (p *painter) rasterize() *image.NRGBA {
	img := imaging.New(canvasWidth, p.y, paper)
	for _, op := range p.ops {
		if op.text == "" {
			draw.Draw(img, op.rect, image.NewUniform(op.fill), image.Point{}, draw.Src)
			continue
		}
		d := &font.Drawer{Dst: img, Src: image.NewUniform(op.fill), Face: p.face, Dot: op.dot}
		d.DrawString(op.text)
	}
	return img
}

func layoutImage(doc Document) *painter {
	p := newPainter()
	left, right := canvasPad, canvasWidth-canvasPad
	split := left + (right-left)*6/10

	closeHeader := p.band(brandRed)
	p.advance(canvasPad / 2)
	refs := append([]string{}, doc.References...)
	for len(refs) < 3 {
		refs = append(refs, "")
	}
	p.text(strings.ToUpper(doc.WorkshopName), paper, left, split, alignLeft)
	p.text(refs[0], paper, split, right, alignRight)
	p.advance(lineHeight)
	p.text(doc.Tagline, paper, left, split, alignLeft)
	p.text(refs[1], paper, split, right, alignRight)
	p.advance(lineHeight)
	p.text(refs[2], paper, split, right, alignRight)
	p.advance(lineHeight)
	for _, line := range p.wrap(doc.ServicesLine, right-left) {
		p.text(line, paper, left, right, alignLeft)
		p.advance(lineHeight)
	}
	p.advance(canvasPad / 2)
	closeHeader()

	p.advance(canvasPad / 2)
	p.text("S.No: "+doc.SNo, mutedInk, left, split, alignLeft)
	p.text("Date: "+doc.Date, mutedInk, split, right, alignRight)
	p.advance(lineHeight)
	p.text("Name: "+doc.Customer, mutedInk, left, right, alignLeft)
	p.advance(lineHeight + canvasPad/2)
	p.rule(0, canvasWidth)

	descEnd := left + (right-left)/2
	rateEnd := descEnd + (right-left)/4

	closeTableHead := p.band(brandRed)
	p.advance((rowHeight - lineHeight) / 2)
	p.text("DESCRIPTION", paper, left, descEnd, alignLeft)
	p.text("RATE", paper, descEnd, rateEnd, alignCenter)
	p.text("AMOUNT", paper, rateEnd, right, alignCenter)
	p.advance(rowHeight - (rowHeight-lineHeight)/2)
	closeTableHead()

	for _, row := range doc.Rows {
		p.advance((rowHeight - lineHeight) / 2)
		p.text(row.Description, ink, left, descEnd, alignLeft)
		p.text(row.Rate, ink, descEnd, rateEnd, alignCenter)
		p.text(row.Amount, ink, rateEnd, right, alignCenter)
		p.advance(rowHeight - (rowHeight-lineHeight)/2)
		p.rule(0, canvasWidth)
	}

	p.advance(canvasPad / 2)
	p.text(doc.Total, ink, left, right, alignRight)
	p.advance(lineHeight + canvasPad/2)
	p.rule(0, canvasWidth)

	closeFooter := p.band(brandRed)
	p.advance(canvasPad / 2)
	p.text(doc.WorkshopName, paper, left, right, alignCenter)
	p.advance(lineHeight)
	for _, line := range doc.Footer {
		for _, wrapped := range p.wrap(line, right-left) {
			p.text(wrapped, paper, left, right, alignLeft)
			p.advance(lineHeight)
		}
	}
	p.advance(canvasPad / 2)
	closeFooter()

	return p
}

// RenderImage draws doc on a white canvas and returns it enlarged by
// ImageScale.
func RenderImage(doc Document) image.Image {
	img := layoutImage(doc).rasterize()
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*ImageScale, b.Dy()*ImageScale, imaging.NearestNeighbor)
}

// RenderPNG writes the PNG encoding of RenderImage(doc) to w.
func RenderPNG(w io.Writer, doc Document) error {
	if err := imaging.Encode(w, RenderImage(doc), imaging.PNG); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}
