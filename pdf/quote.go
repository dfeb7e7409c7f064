package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Page geometry, in millimeters on A4 portrait.
const (
	pageMargin = 14.0

	logoW, logoH   = 40.0, 15.0
	logoColH       = 32.0 // reserved header-left height, logo drawn or not
	addrBoxW       = 78.0
	addrLineH      = 4.5
	summaryRowH    = 7.0
	itemRowH       = 7.0
	totalsW        = 80.0
	totalsRowH     = 6.0
	payRowH        = 7.0
	payLabelW      = 42.0
	footerOffset   = 8.0
	footerJoinWith = "  -  "
)

// QuotePDF renders one quote as a single-page A4 document and returns the
// finished bytes. The only I/O is the logo fetch, bounded by its own
// timeout; everything after that is synchronous geometry. Optional fields
// never fail a render: they are omitted or rendered blank.
func QuotePDF(ctx context.Context, q QuoteData, settings CompanyData) ([]byte, error) {
	sink := newFpdfSink()
	logo := ResolveLogo(ctx, orDefault(settings.LogoURL, defaultLogoURL))
	renderQuote(sink, q, settings, logo)
	return sink.Bytes()
}

// renderQuote lays out the document regions strictly top to bottom. Each
// region starts where the previous one ended, tracked by a running y
// cursor; only the footer is anchored to the page bottom instead.
func renderQuote(s Sink, q QuoteData, settings CompanyData, logo *LogoPayload) {
	pageW, pageH := s.PageSize()

	var client ClientData
	if q.Client != nil {
		client = *q.Client
	}
	clientName := client.DisplayName()
	clientContact := client.ContactName()

	companyName := orDefault(settings.Name, defaultCompanyName)
	companyAddress := orDefault(settings.Address, defaultCompanyAddress)
	companyPhone := orDefault(settings.Phone, defaultCompanyPhone)

	totals, tvaRate := ResolveTotals(q.Items, q.TVARate, q.TotalHT, q.TotalTVA, q.TotalTTC)

	y := pageMargin

	// Header left: logo box plus issuer identity at fixed offsets below it.
	// The offsets do not depend on whether the logo actually resolved, so a
	// dead logo URL shifts nothing.
	s.PlaceImage(pageMargin, y, logoW, logoH, logo)
	issuerStyle := Style{Size: 8, Color: colorDarkGrey}
	s.PlaceText(pageMargin, y+20, companyName, issuerStyle)
	s.PlaceText(pageMargin, y+25, companyAddress, issuerStyle)
	s.PlaceText(pageMargin, y+30, companyPhone, issuerStyle)

	// Header right: bordered delivery-address box sized to its content. The
	// box grows with the wrapped address, never clipping the last line.
	boxX := pageW - pageMargin - addrBoxW
	boxTop := y
	addrStyle := Style{Size: 8, Color: colorDarkGrey}
	addrLines := wrapText(s, client.Address, addrBoxW-10, addrStyle)

	boxH := 6 + 7 + float64(len(addrLines))*addrLineH + 4
	if clientContact != "" {
		boxH += 5
	}
	if client.Phone != "" {
		boxH += 5
	}
	s.StrokeRect(boxX, boxTop, addrBoxW, boxH, colorBorder, 0.5)
	s.PlaceText(boxX+3, boxTop+5, "Adresse de livraison :", Style{Size: 7.5, Color: colorMidGrey})
	s.PlaceText(boxX+3, boxTop+11, clientName, Style{Size: 9, Bold: true, Color: colorBlack})
	lineY := boxTop + 16
	for _, line := range addrLines {
		s.PlaceText(boxX+3, lineY, line, addrStyle)
		lineY += addrLineH
	}

	// Below the box, the client identity again as plain text. Lines with no
	// value are skipped outright, so a sparse client leaves no gaps.
	belowY := boxTop + boxH + 6
	s.PlaceText(boxX, belowY, clientName, Style{Size: 9, Bold: true, Color: colorBlack})
	belowY += 5
	for _, line := range addrLines {
		s.PlaceText(boxX, belowY, line, addrStyle)
		belowY += addrLineH
	}
	belowY += 2
	if clientContact != "" {
		s.PlaceText(boxX, belowY, "A l'attention de "+clientContact, addrStyle)
		belowY += addrLineH
	}
	if client.Phone != "" {
		s.PlaceText(boxX, belowY, "Tél : "+client.Phone, addrStyle)
		belowY += addrLineH
	}

	// Cursor reconciliation: continue below whichever header column ran
	// longer, so the two independently sized columns never overlap what
	// comes next.
	y = max(y+logoColH, belowY) + 6

	// Title.
	s.PlaceText(pageMargin, y, "Devis", Style{Size: 22, Bold: true, Color: colorBlack})
	y += 8

	// Summary strip: one row, five even columns.
	col5 := (pageW - 2*pageMargin) / 5
	y = drawTable(s, pageMargin, y,
		[]Column{
			{Header: "Date", Width: col5},
			{Header: "Numéro pièce", Width: col5},
			{Header: "Client", Width: col5},
			{Header: "Votre référence", Width: col5},
			{Header: "Commercial", Width: col5},
		},
		[][]string{{
			FormatDate(q.Date),
			q.QuoteNumber,
			clientName,
			q.CustomerReference,
			q.SalesPerson,
		}},
		summaryRowH)
	y += 8

	// Comments: optional italic paragraph over the left half. The cursor
	// advances by the number of lines actually produced.
	commentStyle := Style{Size: 8.5, Italic: true, Color: colorMidGrey}
	if lines := wrapText(s, q.Comments, (pageW-2*pageMargin)/2, commentStyle); len(lines) > 0 {
		ly := y
		for _, line := range lines {
			s.PlaceText(pageMargin, ly, line, commentStyle)
			ly += addrLineH
		}
		y += float64(len(lines))*addrLineH + 4
	}

	// Items table. The description column absorbs whatever width the fixed
	// columns leave over. The line total is always quantity times unit
	// price, regardless of any stored per-item total.
	tableW := pageW - 2*pageMargin
	const colQty, colRef, colPU, colTotal = 18.0, 32.0, 38.0, 38.0
	colDesc := tableW - colQty - colRef - colPU - colTotal

	var itemRows [][]string
	for _, it := range q.Items {
		qty := ParseDecimal(it.Quantity)
		pu := ParseDecimal(it.UnitPrice)
		itemRows = append(itemRows, []string{
			formatQuantity(qty),
			it.ProductRef,
			it.Description,
			FormatEUR(pu),
			FormatEUR(qty * pu),
		})
	}
	if len(itemRows) == 0 {
		itemRows = append(itemRows, []string{"", "", "Aucun article", "", ""})
	}
	y = drawTable(s, pageMargin, y,
		[]Column{
			{Header: "Quantité", Width: colQty, Align: AlignCenter},
			{Header: "Référence", Width: colRef},
			{Header: "Article", Width: colDesc},
			{Header: "Prix net unitaire", Width: colPU, Align: AlignRight},
			{Header: "Montant total", Width: colTotal, Align: AlignRight},
		},
		itemRows, itemRowH)
	y += 8

	// Remarks on the left, totals block on the right, both starting at the
	// same y. The totals column's end is the authoritative cursor; remarks
	// may run taller without pushing anything down.
	if lines := wrapText(s, q.Remarks, pageW/2-pageMargin-4, commentStyle); len(lines) > 0 {
		ly := y + 5
		for _, line := range lines {
			s.PlaceText(pageMargin, ly, line, commentStyle)
			ly += addrLineH
		}
	}

	totX := pageW - pageMargin - totalsW
	ty := y
	totalRow := func(label, value string, bold bool) {
		st := Style{Size: 8.5, Color: colorBlack}
		if bold {
			st = Style{Size: 9.5, Bold: true, Color: colorBlack}
		}
		s.PlaceText(totX, ty+4.5, label, st)
		st.Align = AlignRight
		s.PlaceText(pageW-pageMargin, ty+4.5, value, st)
		ty += totalsRowH
	}
	totalRow("Sous-total HT", FormatEUR(totals.HT), false)
	totalRow(fmt.Sprintf("Total de taxes (%s %%)", formatQuantity(tvaRate)), FormatEUR(totals.TVA), false)
	s.DrawLine(totX, ty, pageW-pageMargin, ty, colorBorder, 0.3)
	totalRow("Total TTC", FormatEUR(totals.TTC), true)

	// Payment rows: zero, one or two label/value pairs, included only when
	// the source field is set.
	payY := ty + 8
	var payRows [][2]string
	if settings.PaymentMethod != "" {
		payRows = append(payRows, [2]string{"Méthode de paiement", settings.PaymentMethod})
	}
	if q.DeliveryDelay != "" {
		payRows = append(payRows, [2]string{"Délai de paiement", q.DeliveryDelay})
	}
	payValueW := totalsW - payLabelW + 50
	for _, row := range payRows {
		s.PlaceText(pageMargin, payY+payRowH-2, row[0], Style{Size: 8.5, Bold: true, Color: colorBlack})
		s.FillRect(pageMargin+payLabelW, payY, payValueW, payRowH, colorHeaderFill)
		s.PlaceText(pageMargin+payLabelW+payValueW-2, payY+payRowH-2, row[1],
			Style{Size: 8.5, Color: colorDarkGrey, Align: AlignRight})
		payY += payRowH + 1
	}

	// Footer, anchored to the page bottom regardless of where the content
	// cursor ended up.
	footerY := pageH - footerOffset
	s.DrawLine(pageMargin, footerY-4, pageW-pageMargin, footerY-4, colorBorder, 0.3)
	footStyle := Style{Size: 7.5, Color: colorMidGrey}
	s.PlaceText(pageMargin, footerY, "1 / 1", footStyle)

	parts := []string{companyName, companyAddress}
	if settings.SIREN != "" {
		parts = append(parts, "Siren - "+settings.SIREN)
	}
	if settings.TVANumber != "" {
		parts = append(parts, "N° Identification CEE "+settings.TVANumber)
	}
	footStyle.Align = AlignCenter
	s.PlaceText(pageW/2, footerY, strings.Join(parts, footerJoinWith), footStyle)
}

// formatQuantity prints a coerced number without trailing zeros: 10 -> "10",
// 2.5 -> "2.5".
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
