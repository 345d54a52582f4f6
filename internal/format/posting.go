package format

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"go-posting-cleaner/internal/models"
	"go-posting-cleaner/internal/sanitize"
)

// Fixed presentation labels, they are not taken from the raw posting
const (
	Title         = "JOB POSTING - GRAPHIC DESIGNER"
	PositionLabel = "Creative Graphic Designer"
	WorkTypeLabel = "Remote Available"
	CallToAction  = "Apply today - don't miss this opportunity!"

	separatorWidth = 40
)

const postingLayout = `
{{.Title}}
{{.Separator}}

Company: {{.Company}}
Position: {{.Position}}
Work Type: {{.WorkType}}

REQUIREMENTS:
{{range $i, $req := .Requirements}}{{inc $i}}. {{clean $req}}
{{end}}
APPLICATION DETAILS:
- Email: {{.Email}}
- Deadline: {{.Deadline}}

{{if .HasTestimonial}}TESTIMONIAL:
"{{.Testimonial}}"

{{end}}{{.CallToAction}}`

var postingTemplate = template.Must(template.New("posting").Funcs(template.FuncMap{
	"inc":   func(i int) int { return i + 1 },
	"clean": cleanRequirement,
}).Parse(postingLayout))

// postingView is the flattened data handed to the template
type postingView struct {
	Title          string
	Separator      string
	Company        string
	Position       string
	WorkType       string
	Requirements   []string
	Email          string
	Deadline       string
	HasTestimonial bool
	Testimonial    string
	CallToAction   string
}

func newPostingView(rec models.PostingRecord) postingView {
	view := postingView{
		Title:        Title,
		Separator:    strings.Repeat("=", separatorWidth),
		Company:      rec.Company,
		Position:     PositionLabel,
		WorkType:     WorkTypeLabel,
		Requirements: rec.Requirements,
		Email:        rec.Email,
		Deadline:     rec.Deadline,
		CallToAction: CallToAction,
	}
	if rec.HasTestimonial() {
		view.HasTestimonial = true
		view.Testimonial = *rec.Testimonial
	}
	return view
}

func cleanRequirement(req string) string {
	return strings.TrimSpace(sanitize.StripEmoji(req))
}

// Render writes the standardized posting for rec to w.
func Render(w io.Writer, rec models.PostingRecord) error {
	if err := postingTemplate.Execute(w, newPostingView(rec)); err != nil {
		return fmt.Errorf("failed to render posting: %w", err)
	}
	return nil
}

// Posting renders rec into the standardized posting text.
// The record is only read, rendering the same record twice gives the same bytes.
func Posting(rec models.PostingRecord) string {
	var sb strings.Builder
	if err := Render(&sb, rec); err != nil {
		//the layout is fixed and strings.Builder never fails, so this is a programming error
		panic(err)
	}
	return sb.String()
}
