package printing

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"resto_pos/internal/domain/entities"
	"resto_pos/internal/domain/tax"

	"github.com/sirupsen/logrus"
)

// ticketWidth fits 80mm thermal paper.
const ticketWidth = 40

// TextPrinter renders a receipt as a plain-text ticket and writes it to the
// configured writer (stdout by default, which is where a print spooler or a
// terminal-attached thermal printer picks it up). It implements the print
// collaborator port; all formatting lives here, outside the core.
type TextPrinter struct {
	mu  sync.Mutex
	out io.Writer
}

func NewTextPrinter(out io.Writer) *TextPrinter {
	if out == nil {
		out = os.Stdout
	}
	return &TextPrinter{out: out}
}

func (p *TextPrinter) Print(_ context.Context, doc entities.PrintableReceipt) error {
	var b strings.Builder

	writeCentered(&b, doc.Business.Name)
	writeCentered(&b, "RUC "+doc.Business.RUC)
	writeCentered(&b, doc.Business.Address)
	writeCentered(&b, doc.Business.City)
	writeRule(&b)

	writeCentered(&b, fmt.Sprintf("%s  N° %s", doc.Receipt.Type, doc.Receipt.Number))
	b.WriteString(fmt.Sprintf("Fecha: %s\n", doc.IssuedAt.Format("02/01/2006 15:04")))
	if doc.Customer != nil {
		b.WriteString(fmt.Sprintf("Cliente: %s\n", doc.Customer.Name))
		b.WriteString(fmt.Sprintf("Doc: %s\n", doc.Customer.Doc))
	}
	writeRule(&b)

	b.WriteString(padRight("CANT DESCRIPCION", ticketWidth-8) + " IMPORTE\n")
	for _, it := range doc.Receipt.Items {
		amount := tax.Round2(it.Quantity * it.Price)
		left := fmt.Sprintf("%g x %s", it.Quantity, it.Description)
		b.WriteString(padRight(left, ticketWidth-8) + fmt.Sprintf("%8.2f", amount) + "\n")
	}
	writeRule(&b)

	b.WriteString(totalLine("OP. GRAVADA", tax.Round2(doc.Totals.Subtotal)))
	b.WriteString(totalLine("IGV (18%)", tax.Round2(doc.Totals.Tax)))
	b.WriteString(totalLine("TOTAL S/", tax.Round2(doc.Totals.Total)))
	writeRule(&b)

	if doc.Receipt.PaymentMethod != "" {
		b.WriteString(fmt.Sprintf("Pago: %s\n", doc.Receipt.PaymentMethod))
	}
	if doc.Receipt.Cashier != "" {
		b.WriteString(fmt.Sprintf("Caja: %s\n", doc.Receipt.Cashier))
	}
	if doc.Receipt.DeliveryPerson != "" {
		b.WriteString(fmt.Sprintf("Delivery - Repartidor: %s\n", doc.Receipt.DeliveryPerson))
	}
	writeCentered(&b, "¡Gracias por su preferencia!")
	b.WriteString("\n")

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := io.WriteString(p.out, b.String()); err != nil {
		logrus.WithError(err).Error("printer: write failed")
		return err
	}
	return nil
}

func totalLine(label string, amount float64) string {
	return padRight(label, ticketWidth-10) + fmt.Sprintf("%10.2f", amount) + "\n"
}

func writeRule(b *strings.Builder) {
	b.WriteString(strings.Repeat("-", ticketWidth) + "\n")
}

func writeCentered(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	runes := []rune(s)
	if len(runes) >= ticketWidth {
		b.WriteString(s + "\n")
		return
	}
	pad := (ticketWidth - len(runes)) / 2
	b.WriteString(strings.Repeat(" ", pad) + s + "\n")
}

func padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
