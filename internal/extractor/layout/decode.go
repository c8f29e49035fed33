package layout

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
	"github.com/custodia-labs/tenure-cli/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.DocumentDecoder = (*Decoder)(nil)

var (
	// blockRegex matches one positioned text block in the rendered
	// page markup.
	blockRegex = regexp.MustCompile(`(?s)<p([^>]*)>(.*?)</p>`)

	// Style attribute fragments carrying position and size.
	topRegex      = regexp.MustCompile(`top:([0-9.]+)pt`)
	leftRegex     = regexp.MustCompile(`left:([0-9.]+)pt`)
	fontSizeRegex = regexp.MustCompile(`font-size:([0-9.]+)pt`)

	// tagRegex strips residual markup from a block's text.
	tagRegex = regexp.MustCompile(`<[^>]+>`)
)

// Decoder turns document bytes into positioned layout elements using
// MuPDF's per-page markup rendering, which carries each text block's
// page coordinates and font size inline.
type Decoder struct{}

// NewDecoder creates a new document decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses the document and returns its positioned text fragments.
// Element order follows the renderer's output order; the extractor
// re-sorts into reading order.
func (d *Decoder) Decode(data []byte) ([]domain.LayoutElement, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidInput)
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	var elems []domain.LayoutElement
	for page := 0; page < doc.NumPage(); page++ {
		markup, err := doc.HTML(page, false)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", page, err)
		}
		elems = append(elems, parsePage(markup, page)...)
	}
	return elems, nil
}

// parsePage extracts positioned text elements from one page's markup.
// Blocks without usable text are dropped; a block missing position or
// size attributes keeps zero values for them.
func parsePage(markup string, page int) []domain.LayoutElement {
	var elems []domain.LayoutElement

	for _, block := range blockRegex.FindAllStringSubmatch(markup, -1) {
		attrs, inner := block[1], block[2]

		text := strings.TrimSpace(html.UnescapeString(tagRegex.ReplaceAllString(inner, "")))
		if text == "" {
			continue
		}

		el := domain.LayoutElement{
			Text: text,
			Page: page,
			Y:    styleValue(topRegex, attrs),
			X:    styleValue(leftRegex, attrs),
		}

		// Font size is declared on the block or an inner run.
		if size := styleValue(fontSizeRegex, attrs); size > 0 {
			el.FontSize = size
		} else {
			el.FontSize = styleValue(fontSizeRegex, inner)
		}

		elems = append(elems, el)
	}
	return elems
}

// styleValue pulls one numeric style attribute out of markup, 0 when
// absent.
func styleValue(re *regexp.Regexp, s string) float64 {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}
