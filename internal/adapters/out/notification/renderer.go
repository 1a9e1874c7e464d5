// Package notification renders and delivers order acknowledgment letters.
package notification

import (
	"html/template"
	"strings"

	"ordertaking/internal/core/domain/model/order"
)

var letterTemplate = template.Must(template.New("acknowledgment").Parse(`<html>
<body>
<p>Dear {{.FirstName}} {{.LastName}},</p>
<p>Thank you for your order {{.OrderID}}.</p>
<table>
{{range .Lines}}<tr><td>{{.LineID}}</td><td>{{.ProductCode}}</td><td>{{.Quantity}}</td><td>{{printf "%.2f" .LinePrice}}</td></tr>
{{end}}</table>
<p>Amount to bill: {{printf "%.2f" .AmountToBill}}</p>
</body>
</html>
`))

type letterLine struct {
	LineID      string
	ProductCode string
	Quantity    float64
	LinePrice   float64
}

type letterData struct {
	FirstName    string
	LastName     string
	OrderID      string
	Lines        []letterLine
	AmountToBill float64
}

// LetterRenderer renders acknowledgment letters from a fixed HTML template.
type LetterRenderer struct{}

// NewLetterRenderer creates a template-backed letter renderer.
func NewLetterRenderer() *LetterRenderer {
	return &LetterRenderer{}
}

// CreateOrderAcknowledgmentLetter renders the letter for a priced order.
func (r *LetterRenderer) CreateOrderAcknowledgmentLetter(pricedOrder order.PricedOrder) order.HTMLDocument {
	lines := make([]letterLine, 0, len(pricedOrder.Lines()))
	for _, line := range pricedOrder.Lines() {
		lines = append(lines, letterLine{
			LineID:      line.LineID().Value(),
			ProductCode: line.ProductCode().Value(),
			Quantity:    line.Quantity().Value(),
			LinePrice:   line.LinePrice().Amount(),
		})
	}

	var sb strings.Builder
	err := letterTemplate.Execute(&sb, letterData{
		FirstName:    pricedOrder.CustomerInfo().Name().FirstName().Value(),
		LastName:     pricedOrder.CustomerInfo().Name().LastName().Value(),
		OrderID:      pricedOrder.ID().String(),
		Lines:        lines,
		AmountToBill: pricedOrder.AmountToBill().Amount(),
	})
	if err != nil {
		// The template is fixed and the data is plain values, so execution
		// cannot fail for a properly constructed order.
		return ""
	}

	return order.HTMLDocument(sb.String())
}
