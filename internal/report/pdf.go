package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"prioritiser-backend/internal/assessment"
	"prioritiser-backend/internal/shared/telemetry"
)

const (
	cmToPt       = 28.3465
	marginX      = 56.0
	headerHeight = 72.0
	footerHeight = 3.7 * cmToPt

	coverTitle     = "Lumos Prioritiser Report"
	coverStrapline = "A quick, honest snapshot of where your marketing is now — and what to do next."
	brandTagline   = "Marketing team in a box, now in app form."
	footerText     = "Generated by the Lumos Prioritiser — a free tool from Lumos Digital Marketing."
)

type rgb struct{ r, g, b int }

var (
	colCharcoal = rgb{0x2b, 0x2f, 0x33}
	colBlue     = rgb{0x38, 0x4c, 0x55}
	colGrey     = rgb{0x93, 0x9d, 0x9c}
	colWhite    = rgb{255, 255, 255}
	colBody     = rgb{235, 245, 247}
	colCardBody = rgb{240, 245, 247}
	colCard     = rgb{0x34, 0x40, 0x45}
)

type fontRef struct {
	family string
	style  string
	utf8   bool
}

// pdfRenderer lays out framed pages with a vertical cursor. Coordinates are
// top-down; the usable content region sits between the header and footer
// bands on every page.
type pdfRenderer struct {
	doc *fpdf.Fpdf
	tr  func(string) string

	pageW, pageH  float64
	contentTop    float64
	contentBottom float64

	heading fontRef
	body    fontRef

	logoName string
	logoW    float64
	logoH    float64

	headerLabel string
}

// RenderPDF produces the full report document: cover page, explainer page and
// one card per priority across as many framed pages as needed. assetsDir may
// hold optional brand fonts and a logo; missing assets fall back to built-ins.
func RenderPDF(contact Contact, scores assessment.ChannelScores, priorities []assessment.Priority, assetsDir string) ([]byte, error) {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetAutoPageBreak(false, 0)

	r := &pdfRenderer{
		doc: doc,
		tr:  doc.UnicodeTranslatorFromDescriptor(""),
	}
	r.pageW, r.pageH = doc.GetPageSize()
	r.contentTop = headerHeight + 40
	r.contentBottom = r.pageH - footerHeight - 40

	r.loadBrandAssets(assetsDir)

	doc.SetHeaderFunc(r.drawHeader)
	doc.SetFooterFunc(r.drawFooter)

	r.drawCoverPage(contact)
	r.drawExplainerPage()
	r.drawPriorityPages(priorities)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// loadBrandAssets registers optional brand fonts and the logo, falling back
// to Helvetica and a text brand mark when files are absent.
func (r *pdfRenderer) loadBrandAssets(assetsDir string) {
	r.heading = fontRef{family: "Helvetica", style: "B"}
	r.body = fontRef{family: "Helvetica"}

	headingPath := filepath.Join(assetsDir, "fonts", "SpaceGrotesk-SemiBold.ttf")
	if _, err := os.Stat(headingPath); err == nil {
		r.doc.AddUTF8Font("SpaceGrotesk", "B", headingPath)
		if r.doc.Ok() {
			r.heading = fontRef{family: "SpaceGrotesk", style: "B", utf8: true}
		}
	} else {
		telemetry.Warn("report.font_fallback", map[string]any{"font": "SpaceGrotesk-SemiBold", "fallback": "HelveticaBold"})
	}

	bodyPath := filepath.Join(assetsDir, "fonts", "Inter-Regular.ttf")
	if _, err := os.Stat(bodyPath); err == nil {
		r.doc.AddUTF8Font("Inter", "", bodyPath)
		if r.doc.Ok() {
			r.body = fontRef{family: "Inter", utf8: true}
		}
	} else {
		telemetry.Warn("report.font_fallback", map[string]any{"font": "Inter-Regular", "fallback": "Helvetica"})
	}

	logoPath := filepath.Join(assetsDir, "lumos-logo-dark.png")
	if _, err := os.Stat(logoPath); err == nil {
		info := r.doc.RegisterImageOptions(logoPath, fpdf.ImageOptions{ImageType: "PNG"})
		if r.doc.Ok() && info != nil {
			r.logoName = logoPath
			r.logoW = info.Width() * 0.4
			r.logoH = info.Height() * 0.4
		}
	} else {
		telemetry.Warn("report.logo_fallback", map[string]any{"fallback": "text brand mark"})
	}
}

// text draws a single line with its baseline at y.
func (r *pdfRenderer) text(x, y, size float64, font fontRef, col rgb, s string) {
	r.doc.SetFont(font.family, font.style, size)
	r.doc.SetTextColor(col.r, col.g, col.b)
	if !font.utf8 {
		s = r.tr(s)
	}
	r.doc.Text(x, y, s)
}

func (r *pdfRenderer) stringWidth(s string, size float64, font fontRef) float64 {
	r.doc.SetFont(font.family, font.style, size)
	if !font.utf8 {
		s = r.tr(s)
	}
	return r.doc.GetStringWidth(s)
}

// addFramedPage starts a new page; the header and footer bands are stamped by
// the header/footer funcs.
func (r *pdfRenderer) addFramedPage(label string) {
	r.headerLabel = label
	r.doc.AddPage()
}

func (r *pdfRenderer) drawHeader() {
	// Page background.
	r.doc.SetFillColor(colCharcoal.r, colCharcoal.g, colCharcoal.b)
	r.doc.Rect(0, 0, r.pageW, r.pageH, "F")

	// Header band.
	r.doc.SetFillColor(colBlue.r, colBlue.g, colBlue.b)
	r.doc.Rect(0, 0, r.pageW, headerHeight, "F")

	if r.logoName != "" {
		r.doc.ImageOptions(r.logoName, marginX, (headerHeight-r.logoH)/2, r.logoW, r.logoH, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	} else {
		r.text(marginX, headerHeight-26, 22, r.heading, colWhite, "LUMOS")
	}

	r.text(marginX, headerHeight-18, 10, r.body, colGrey, brandTagline)

	if r.headerLabel != "" {
		r.text(r.pageW-marginX-180, headerHeight-24, 10, r.heading, colWhite, strings.ToUpper(r.headerLabel))
	}
}

func (r *pdfRenderer) drawFooter() {
	lineY := r.pageH - footerHeight + 16
	r.doc.SetDrawColor(colGrey.r, colGrey.g, colGrey.b)
	r.doc.SetLineWidth(0.5)
	r.doc.Line(marginX, lineY, r.pageW-marginX, lineY)

	r.text(marginX, r.pageH-footerHeight+26, 9, r.body, colGrey, footerText)
}

func (r *pdfRenderer) drawCoverPage(contact Contact) {
	r.addFramedPage("Report overview")

	subtitle := "For " + contact.Name
	if contact.Company != "" {
		subtitle = "For " + contact.Company
	}

	centerX := r.pageW / 2
	r.text(centerX-r.stringWidth(coverTitle, 28, r.heading)/2, r.pageH/2-40, 28, r.heading, colWhite, coverTitle)
	r.text(centerX-r.stringWidth(subtitle, 16, r.body)/2, r.pageH/2-8, 16, r.body, colWhite, subtitle)
	r.text(centerX-r.stringWidth(coverStrapline, 11, r.body)/2, r.pageH/2+22, 11, r.body, colGrey, coverStrapline)

	metaLines := []string{"Name: " + contact.Name}
	if contact.Company != "" {
		metaLines = append(metaLines, "Company: "+contact.Company)
	}
	metaLines = append(metaLines, "Email: "+contact.Email)
	if contact.Phone != "" {
		metaLines = append(metaLines, "Phone: "+contact.Phone)
	}

	metaY := r.pageH/2 + 70
	for _, line := range metaLines {
		r.text(marginX, metaY, 10, r.body, colGrey, line)
		metaY += 14
	}
}

func (r *pdfRenderer) drawExplainerPage() {
	r.addFramedPage("How to read this report")

	const (
		headingSize = 18.0
		bodySize    = 11.0
	)
	lineHeight := bodySize * 1.5

	y := r.contentTop

	drawHeading := func(text string) {
		r.text(marginX, y, headingSize, r.heading, colWhite, text)
		y += headingSize * 1.6
	}

	// A paragraph that cannot fit the remaining content region is dropped
	// rather than spilling onto another page.
	drawParagraph := func(text string) {
		lines := wrapText(text, 92)
		needed := float64(len(lines)) * lineHeight
		if y+needed > r.contentBottom {
			return
		}
		for _, line := range lines {
			r.text(marginX, y, bodySize, r.body, colBody, line)
			y += lineHeight
		}
		y += 6
	}

	drawHeading("What this report tells you")

	drawParagraph("The Lumos Prioritiser is a short assessment designed to turn a few honest answers into a clear next-step plan. It is not a full audit, but it gives a directional view of where your marketing is strong and where there may be more risk or opportunity.")

	drawParagraph("We score six core areas — Foundations, Website, SEO, Email, PPC and Social. Higher scores mean stronger, more reliable performance. Lower scores highlight places where fixing a few basics could unlock outsized gains.")

	drawHeading("How to use your results")

	drawParagraph("Use this report as a conversation starter, not a final verdict. Start with the Channel snapshot to see where your scores cluster. Then focus on the Recommended next moves — these are the practical actions most likely to unlock meaningful progress in the next 4–8 weeks.")

	drawParagraph("You do not need to tackle everything at once. Pick one or two priorities, commit to them, and review the impact. When you are ready, we can support you with a deeper audit and an execution plan.")
}

func (r *pdfRenderer) drawPriorityPages(priorities []assessment.Priority) {
	const (
		headingSize  = 16.0
		bodySize     = 11.0
		cardPaddingX = 20.0
		cardPaddingY = 18.0
		cardGap      = 28.0
	)
	headingLine := headingSize * 1.3
	bodyLine := bodySize * 1.4

	r.addFramedPage("Your priority plan")
	cardWidth := r.pageW - marginX*2
	currentTop := r.contentTop

	ensureSpace := func(needed float64) {
		if currentTop+needed > r.contentBottom {
			r.addFramedPage("Your priority plan (continued)")
			currentTop = r.contentTop
		}
	}

	for index, p := range priorities {
		titleLine := fmt.Sprintf("[%s] %s", p.Channel, p.Title)

		var textLines []string
		paragraphs := []string{titleLine, "", "Why this matters", p.Why, "", "Actions to take next"}
		for _, par := range paragraphs {
			switch par {
			case "":
				textLines = append(textLines, "")
			case "Why this matters", "Actions to take next":
				textLines = append(textLines, par)
			default:
				textLines = append(textLines, wrapText(par, 88)...)
			}
		}
		for _, a := range p.Actions {
			textLines = append(textLines, wrapText("• "+a, 86)...)
		}

		nonEmpty := 0
		for _, l := range textLines {
			if l != "" {
				nonEmpty++
			}
		}
		// Cards never split across pages; estimate the height up front.
		estimatedHeight := cardPaddingY*2 + headingLine + float64(nonEmpty)*bodyLine + 32

		ensureSpace(estimatedHeight)

		r.doc.SetFillColor(colCard.r, colCard.g, colCard.b)
		r.doc.RoundedRect(marginX, currentTop, cardWidth, estimatedHeight, 12, "1234", "F")

		textY := currentTop + cardPaddingY + headingSize

		r.text(marginX+cardPaddingX, textY, 10, r.heading, colGrey, fmt.Sprintf("#%d", index+1))
		r.text(marginX+cardPaddingX+30, textY, headingSize, r.heading, colWhite, titleLine)

		textY += headingLine

		for _, line := range textLines {
			if line == "" {
				textY += bodyLine * 0.4
				continue
			}
			col := colCardBody
			if line == "Why this matters" || line == "Actions to take next" {
				col = colWhite
			}
			r.text(marginX+cardPaddingX, textY, bodySize, r.body, col, line)
			textY += bodyLine
		}

		currentTop += estimatedHeight + cardGap
	}
}
