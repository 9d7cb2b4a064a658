package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode"

	"orderlookup/internal/widget"
)

// TextRenderer renders widget states as plain text for terminals.
type TextRenderer struct {
	l    Localizer
	opts Options
}

var _ widget.Renderer = (*TextRenderer)(nil)

func NewTextRenderer(opts Options) *TextRenderer {
	return &TextRenderer{l: NewLocalizer(opts.Locale), opts: opts}
}

func (r *TextRenderer) Render(s widget.State) (string, error) {
	var buf bytes.Buffer
	if err := widget.Visit[error](s, &textVisitor{r: r, w: &buf}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type textVisitor struct {
	r *TextRenderer
	w io.Writer
}

func (v *textVisitor) Idle(widget.Idle) error {
	_, err := fmt.Fprintln(v.w, v.r.l.T("Enter an order UID and press Find."))
	return err
}

func (v *textVisitor) Loading(s widget.Loading) error {
	_, err := fmt.Fprintln(v.w, v.r.l.T("Searching for order %s...", cell(s.OrderID.String())))
	return err
}

func (v *textVisitor) Error(s widget.Error) error {
	_, err := fmt.Fprintln(v.w, v.r.l.ErrorText(s.Err))
	return err
}

func (v *textVisitor) Result(s widget.Result) error {
	view := BuildView(s.Order, v.r.l, v.r.opts)

	tw := tabwriter.NewWriter(v.w, 0, 0, 2, ' ', 0)

	writeSection(tw, view.Title, view.Summary)
	if view.HasDelivery {
		writeSection(tw, view.DeliveryTitle, view.Delivery)
	}
	if view.HasPayment {
		writeSection(tw, view.PaymentTitle, view.Payment)
	}

	if !view.HasItems {
		fmt.Fprintf(tw, "\n%s\n", view.NoItems)
		return tw.Flush()
	}

	fmt.Fprintf(tw, "\n%s\n", view.ItemsTitle)
	fmt.Fprintln(tw, strings.Join(view.Columns, "\t"))
	for _, item := range view.Items {
		fmt.Fprintln(tw, strings.Join([]string{
			cell(item.Name), cell(item.Price), cell(item.Sale),
			cell(item.Size), cell(item.TotalPrice), cell(item.Brand),
		}, "\t"))
	}

	return tw.Flush()
}

func writeSection(w io.Writer, title string, fields []Field) {
	fmt.Fprintf(w, "\n%s\n", title)
	for _, f := range fields {
		fmt.Fprintf(w, "%s:\t%s\n", f.Label, cell(f.Value))
	}
}

// cell replaces control characters with spaces so a remote value stays in its table cell.
func cell(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}
