// Package pdf renders the printable invoice handed to clients.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company name        │  Invoice # + dates           │
//	│  Company address / phone / email                            │
//	│  ───────────────────────────────────────────────────────────│
//	│  BILL TO: client name + contact                             │
//	│  ───────────────────────────────────────────────────────────│
//	│  TABLE: Area | Surface | Coats | Labor | Materials | Total  │
//	│  ───────────────────────────────────────────────────────────│
//	│  TOTALS: Labor / Materials / adjustment / TOTAL DUE         │
//	│  FOOTER: payment terms + notes                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/usecase"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/estimating"
)

var (
	colorPrimary = &props.Color{Red: 21, Green: 101, Blue: 192}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implements usecase.InvoicePDFGenerator with Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF renders the invoice and returns the PDF bytes. client
// and settings may be nil; the affected blocks degrade to placeholders.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	inv *entity.Invoice,
	client *entity.Client,
	settings *entity.CompanySettings,
) ([]byte, error) {
	companyName := "Painting Services"
	if settings != nil && settings.CompanyName != "" {
		companyName = settings.CompanyName
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+inv.InvoiceNumber, true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv, companyName))
	if settings != nil {
		m.AddRows(companyContactRow(settings))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billToRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range areaRows(inv.Areas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(inv))

	if footer := termsFooterRows(inv); len(footer) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		for _, r := range footer {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: company name left, invoice number and dates right.
func headerRow(inv *entity.Invoice, companyName string) core.Row {
	right := []core.Component{
		text.New("INVOICE", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right,
			Color: colorPrimary, Top: 1,
		}),
		text.New(inv.InvoiceNumber, props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
		}),
	}
	dates := "Issued: " + inv.CreatedAt.Format("Jan 2, 2006")
	if inv.DueDate != nil {
		dates += "   Due: " + inv.DueDate.Format("Jan 2, 2006")
	}
	right = append(right, text.New(dates, props.Text{
		Size: 8, Align: align.Right, Top: 14, Color: colorGray,
	}))

	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(titleCase(inv.Status), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(right...),
	)
}

// companyContactRow: address / phone / email of the painting company.
func companyContactRow(s *entity.CompanySettings) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%s   |   %s   |   %s",
				nonEmpty(s.CompanyAddress, "—"),
				nonEmpty(s.CompanyPhone, "—"),
				nonEmpty(s.CompanyEmail, "—"),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// billToRow: the client block.
func billToRow(client *entity.Client) core.Row {
	name, contact := "—", ""
	if client != nil {
		name = client.Name
		parts := make([]string, 0, 3)
		for _, p := range []string{client.Address, client.Phone, client.Email} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		contact = strings.Join(parts, "   |   ")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Area", 4, align.Left),
		h("Surface", 2, align.Left),
		h("Coats", 1, align.Center),
		h("Labor", 2, align.Right),
		h("Materials", 2, align.Right),
		h("Total", 1, align.Right),
	)
}

// areaRows: one row per project area, with the paint spec underneath the
// area name when present.
func areaRows(areas []entity.ProjectArea) []core.Row {
	result := make([]core.Row, 0, len(areas))
	for _, a := range areas {
		name := a.AreaName
		if spec := paintSpec(a); spec != "" {
			name += "  (" + spec + ")"
		}
		lineTotal := a.LaborCost.Add(a.MaterialCost)
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(a.SurfaceType, props.Text{Size: 8, Align: align.Left, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", a.NumberOfCoats), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("$"+formatMoney(a.LaborCost.StringFixed(2)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New("$"+formatMoney(a.MaterialCost.StringFixed(2)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New("$"+formatMoney(lineTotal.StringFixed(2)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: labor, materials, the manual adjustment when present, and the
// grand total.
func totalsRow(inv *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1,
		})
	}

	labels := []core.Component{label("Labor:"), label("Materials:")}
	values := []core.Component{
		value("$" + formatMoney(inv.TotalLabor.StringFixed(2))),
		value("$" + formatMoney(inv.TotalMaterial.StringFixed(2))),
	}
	if inv.ManualTotal {
		computed := inv.TotalLabor.Add(inv.TotalMaterial)
		if adj := estimating.AdjustmentFor(computed, inv.TotalAmount); !adj.IsZero() {
			name := "Discount:"
			if adj.Kind == estimating.AdjustmentIncrease {
				name = "Adjustment:"
			}
			labels = append(labels, label(name))
			values = append(values, value("$"+formatMoney(adj.Amount.StringFixed(2))))
		}
	}
	labels = append(labels, grandLabel("TOTAL DUE:"))
	values = append(values, grandValue("$"+formatMoney(inv.TotalAmount.StringFixed(2))))

	height := float64(18 + 8*(len(labels)-3))
	return row.New(height).Add(
		col.New(5),
		col.New(4).Add(labels...),
		col.New(3).Add(values...),
	)
}

// termsFooterRows: payment terms plus the free-text notes block.
func termsFooterRows(inv *entity.Invoice) []core.Row {
	var rows []core.Row
	if inv.PaymentTerms != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Payment terms: "+inv.PaymentTerms, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
		)))
	}
	if inv.TermsAndNotes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New(inv.TermsAndNotes, props.Text{Size: 7.5, Color: colorGray, Top: 1}),
		)))
	}
	return rows
}

func paintSpec(a entity.ProjectArea) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.PaintBrand, a.PaintColor, a.PaintFinish} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatMoney inserts thousands separators into a fixed-point string.
// E.g. "25000.00" → "25,000.00".
func formatMoney(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	n := len(intPart)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i := 0; i < n; i++ {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, intPart[i])
		}
		intPart = string(buf)
	}
	out := intPart
	if hasFrac {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}
