// Package pdf renders commercial quotes ("devis") as single-page A4 PDF
// documents. The caller maps its persisted records into the display
// snapshots below and gets the finished bytes back; nothing in here touches
// the database, and the only network access is the optional logo fetch.
package pdf

import "strings"

// ClientData is the display snapshot of the recipient. Numeric identifiers
// are deliberately absent: the document shows names and free-text address
// lines, nothing else.
type ClientData struct {
	CompanyName string
	FirstName   string
	LastName    string
	Address     string
	Phone       string
}

// ContactName returns "First Last" trimmed, which doubles as the fallback
// display name when no company name is set.
func (c ClientData) ContactName() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// DisplayName prefers the company name, then the contact name, then an
// em-dash placeholder so the document never shows an empty recipient.
func (c ClientData) DisplayName() string {
	if n := strings.TrimSpace(c.CompanyName); n != "" {
		return n
	}
	if n := c.ContactName(); n != "" {
		return n
	}
	return "—"
}

// QuoteItemData is one line of the items table. Quantity and UnitPrice stay
// string-typed because the upstream store keeps them as strings; anything
// unparsable is treated as zero at render time.
type QuoteItemData struct {
	Quantity    string
	ProductRef  string
	Description string
	UnitPrice   string
}

// QuoteData carries everything the template prints. TVARate and the three
// totals are optional overrides in string form; empty or unparsable values
// fall back to computed amounts (see ResolveTotals).
type QuoteData struct {
	QuoteNumber       string
	Date              string // ISO date, empty means "today"
	CustomerReference string
	SalesPerson       string
	DeliveryDelay     string
	ShippingPoint     string
	ShippingTerms     string
	Comments          string
	Remarks           string
	TVARate           string
	TotalHT           string
	TotalTVA          string
	TotalTTC          string
	Client            *ClientData
	Items             []QuoteItemData
}

// CompanyData is the issuer identity shown in the header and footer. Every
// field is optional; the demonstration issuer fills the gaps.
type CompanyData struct {
	Name          string
	Address       string
	Phone         string
	Email         string
	LogoURL       string
	SIREN         string
	TVANumber     string
	PaymentMethod string
}

// Demonstration issuer, used whenever settings are blank.
const (
	defaultCompanyName    = "T-LINK NETWORK OPERATEUR"
	defaultCompanyAddress = "6 Bd des Monts d'Or, 69580 Sathonay camp"
	defaultCompanyPhone   = "Tél 04 26 78 75 35"
	defaultLogoURL        = "https://slelguoygbfzlpylpxfs.supabase.co/storage/v1/render/image/public/project-uploads/3771e944-925f-4b77-b472-1f86fadc22de/tlink-network-operateur-resized-1771506429087.webp?width=400&height=200&resize=contain"
)

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
