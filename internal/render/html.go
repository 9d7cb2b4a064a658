package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"orderlookup/internal/widget"
)

//go:embed templates/widget.html
var templateFS embed.FS

// HTMLRenderer renders widget states as escaped HTML fragments.
type HTMLRenderer struct {
	tmpl *template.Template
	l    Localizer
	opts Options
}

var _ widget.Renderer = (*HTMLRenderer)(nil)

func NewHTMLRenderer(opts Options) (*HTMLRenderer, error) {
	const op = "render.NewHTMLRenderer"

	tmpl, err := template.ParseFS(templateFS, "templates/widget.html")
	if err != nil {
		return nil, fmt.Errorf("%s: parse templates: %w", op, err)
	}

	return &HTMLRenderer{tmpl: tmpl, l: NewLocalizer(opts.Locale), opts: opts}, nil
}

func (r *HTMLRenderer) Localizer() Localizer {
	return r.l
}

func (r *HTMLRenderer) Render(s widget.State) (string, error) {
	var buf bytes.Buffer
	if err := widget.Visit[error](s, &htmlVisitor{r: r, buf: &buf}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type htmlVisitor struct {
	r   *HTMLRenderer
	buf *bytes.Buffer
}

func (v *htmlVisitor) Idle(widget.Idle) error {
	return v.exec("idle", v.r.l.T("Enter an order UID and press Find."))
}

func (v *htmlVisitor) Loading(s widget.Loading) error {
	return v.exec("loading", v.r.l.T("Searching for order %s...", s.OrderID.String()))
}

func (v *htmlVisitor) Result(s widget.Result) error {
	return v.exec("result", BuildView(s.Order, v.r.l, v.r.opts))
}

func (v *htmlVisitor) Error(s widget.Error) error {
	return v.exec("error", v.r.l.ErrorText(s.Err))
}

func (v *htmlVisitor) exec(name string, data any) error {
	return v.r.tmpl.ExecuteTemplate(v.buf, name, data)
}
