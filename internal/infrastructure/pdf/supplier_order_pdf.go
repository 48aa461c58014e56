// Package pdf genera la hoja de pedido a proveedor en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: La Jungla + centro   │  N° Pedido + Fecha           │
//	│  PROVEEDOR: Nombre + CIF + contacto                          │
//	│  TABLA: Cant | Artículo | P.Unit | Subtotal                  │
//	│  TOTALES: Suma de líneas / TOTAL PEDIDO                      │
//	│  FOOTER: Estado + pago + entrega prevista + notas            │
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
	"github.com/shopspring/decimal"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 56}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarn    = &props.Color{Red: 180, Green: 40, Blue: 30}
)

// SupplierOrderPDF renderiza un pedido a proveedor con sus líneas.
type SupplierOrderPDF struct {
	company string
}

// NewSupplierOrderPDF construye el generador; company aparece en la cabecera.
func NewSupplierOrderPDF(company string) *SupplierOrderPDF {
	return &SupplierOrderPDF{company: nonEmpty(company, "La Jungla Workout")}
}

// Generate devuelve los bytes del PDF. supplier puede ser nil si el proveedor ya no existe.
func (g *SupplierOrderPDF) Generate(order *entity.SupplierOrder, supplier *entity.Supplier) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("pdf: pedido nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Pedido "+order.OrderNumber, true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(supplierRow(supplier, order.SupplierID))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(order.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(order)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRows(order)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar pedido %s: %w", order.OrderNumber, err)
	}
	return doc.GetBytes(), nil
}

func (g *SupplierOrderPDF) headerRow(order *entity.SupplierOrder) core.Row {
	center := "Central"
	if order.CenterID != nil {
		center = fmt.Sprintf("Centro %d", *order.CenterID)
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.company, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Destino: "+center, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("PEDIDO A PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(order.OrderNumber, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
			text.New("Fecha: "+order.OrderDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func supplierRow(s *entity.Supplier, supplierID int64) core.Row {
	name := fmt.Sprintf("Proveedor #%d", supplierID)
	detail := "-"
	if s != nil {
		name = s.Name
		detail = fmt.Sprintf("CIF: %s   |   Contacto: %s   |   Tel: %s   |   Email: %s",
			nonEmpty(s.TaxID, "-"), nonEmpty(s.ContactPerson, "-"),
			nonEmpty(s.Phone, "-"), nonEmpty(s.Email, "-"))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(detail, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Artículo", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func itemRows(items []entity.SupplierOrderItem) []core.Row {
	if len(items) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Pedido sin líneas", props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
		))}
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(it.ItemName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatEuro(it.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(formatEuro(it.Subtotal()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func totalsRows(order *entity.SupplierOrder) []core.Row {
	label := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2}
	value := props.Text{Size: 9, Align: align.Right, Right: 1}
	grand := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1}

	rows := []core.Row{
		row.New(6).Add(col.New(6), col.New(3).Add(text.New("Suma de líneas:", label)),
			col.New(3).Add(text.New(formatEuro(order.ItemsTotal()), value))),
		row.New(7).Add(col.New(6), col.New(3).Add(text.New("TOTAL PEDIDO:", label)),
			col.New(3).Add(text.New(formatEuro(order.TotalAmount), grand))),
	}
	if order.TotalMismatch() {
		rows = append(rows, row.New(6).Add(col.New(12).Add(text.New(
			"El total registrado no coincide con la suma de las líneas.",
			props.Text{Size: 7, Align: align.Right, Color: colorWarn, Top: 1},
		))))
	}
	return rows
}

func footerRows(order *entity.SupplierOrder) []core.Row {
	expected := "-"
	if order.ExpectedDelivery != nil {
		expected = order.ExpectedDelivery.Format("02/01/2006")
	}
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(text.New(
			fmt.Sprintf("Estado: %s   |   Pago: %s   |   Entrega prevista: %s",
				order.Status, order.PaymentStatus, expected),
			props.Text{Size: 8, Color: colorGray, Top: 1},
		))),
	}
	if strings.TrimSpace(order.Notes) != "" {
		rows = append(rows, row.New(12).Add(col.New(12).Add(
			text.New("Notas: "+order.Notes, props.Text{Size: 8, Top: 2}),
		)))
	}
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatEuro formatea con punto de miles y coma decimal. Ej: 1234.5 → "1.234,50 €"
func formatEuro(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	out := groupThousands(intPart) + "," + frac + " €"
	if neg {
		out = "-" + out
	}
	return out
}

// groupThousands inserta puntos de miles en un string numérico sin signo.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
