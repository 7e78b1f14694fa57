// Package acknowledgment formats and delivers order confirmation letters.
// Delivery is best effort: a failed send is reported as a not-sent result,
// never as an error.
package acknowledgment

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/orderflow/order-taking-service/internal/domain"
)

const letterTemplate = `Dear {{.FirstName}} {{.LastName}},

Thank you for your order {{.OrderID}}.

{{range .Lines}}  {{.ProductCode}} x {{.Quantity}} = {{.LinePrice}}
{{end}}
Amount to bill: {{.AmountToBill}}

Your order is on its way.
`

// TemplateLetterWriter renders confirmation letters from a text template.
type TemplateLetterWriter struct {
	tmpl *template.Template
}

// NewTemplateLetterWriter creates a writer with the default letter template.
func NewTemplateLetterWriter() *TemplateLetterWriter {
	return &TemplateLetterWriter{
		tmpl: template.Must(template.New("letter").Parse(letterTemplate)),
	}
}

type letterLine struct {
	ProductCode string
	Quantity    string
	LinePrice   string
}

type letterData struct {
	FirstName    string
	LastName     string
	OrderID      string
	AmountToBill string
	Lines        []letterLine
}

// Letter implements workflow.LetterWriter.
func (w *TemplateLetterWriter) Letter(order *domain.PricedOrder) domain.AcknowledgmentLetter {
	data := letterData{
		FirstName:    order.CustomerInfo.Name.FirstName.Value(),
		LastName:     order.CustomerInfo.Name.LastName.Value(),
		OrderID:      order.OrderID.Value(),
		AmountToBill: order.AmountToBill.String(),
	}
	for _, line := range order.Lines {
		data.Lines = append(data.Lines, letterLine{
			ProductCode: line.ProductCode.Value(),
			Quantity:    line.Quantity.String(),
			LinePrice:   line.LinePrice.String(),
		})
	}

	var sb strings.Builder
	if err := w.tmpl.Execute(&sb, data); err != nil {
		// Template data is plain strings; execution cannot realistically
		// fail, but a letter must always be produced.
		return domain.AcknowledgmentLetter(fmt.Sprintf(
			"Thank you for your order %s. Amount to bill: %s.",
			data.OrderID, data.AmountToBill))
	}
	return domain.AcknowledgmentLetter(sb.String())
}
