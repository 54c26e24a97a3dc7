package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"javasmells/src/model"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded stylesheet tree rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// InputView is the code input panel's display state
type InputView struct {
	Code        string
	LineCount   int
	LineNumbers string
	MaxLines    int
	OverLimit   bool
	CanSubmit   bool
	Loading     bool
}

// NewInputView derives the input panel from the current text
func NewInputView(code string, maxLines int, loading bool) InputView {
	s := model.SourceSubmission{Code: code}
	n := s.LineCount()

	nums := make([]string, n)
	for i := range nums {
		nums[i] = strconv.Itoa(i + 1)
	}

	return InputView{
		Code:        code,
		LineCount:   n,
		LineNumbers: strings.Join(nums, "\n"),
		MaxLines:    maxLines,
		OverLimit:   s.OverLimit(maxLines),
		CanSubmit:   !loading && s.CanSubmit(maxLines),
		Loading:     loading,
	}
}

// PageData is passed to the page templates
type PageData struct {
	Title   string
	Active  string
	Catalog []model.CatalogRow
	Input   InputView
	View    View
	Loading View
}

// Renderer renders pages and report fragments from the embedded templates
type Renderer struct {
	pages    map[string]*template.Template
	fragment *template.Template
	css      template.CSS
}

// New parses the embedded templates
func New() (*Renderer, error) {
	base, err := template.ParseFS(templateFS, "templates/base.html", "templates/report.html")
	if err != nil {
		return nil, fmt.Errorf("parsing base templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{"home", "analyzer"} {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFS(templateFS, "templates/"+page+".html"); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", page, err)
		}
		r.pages[page] = clone
	}

	r.fragment, err = template.ParseFS(templateFS, "templates/report.html", "templates/standalone.html")
	if err != nil {
		return nil, fmt.Errorf("parsing report templates: %w", err)
	}

	css, err := fs.ReadFile(staticFS, "static/app.css")
	if err != nil {
		return nil, err
	}
	r.css = template.CSS(css)

	return r, nil
}

// Home renders the info page
func (r *Renderer) Home(w io.Writer) error {
	return r.pages["home"].ExecuteTemplate(w, "layout", PageData{
		Title:   "Home",
		Active:  "home",
		Catalog: model.CatalogRows(),
	})
}

// Analyzer renders the analyzer page
func (r *Renderer) Analyzer(w io.Writer, input InputView, view View) error {
	return r.pages["analyzer"].ExecuteTemplate(w, "layout", PageData{
		Title:   "Analyzer",
		Active:  "analyze",
		Input:   input,
		View:    view,
		Loading: View{Mode: ModeLoading},
	})
}

// Report renders only the report panel for view
func (r *Renderer) Report(w io.Writer, view View) error {
	return r.fragment.ExecuteTemplate(w, "report", view)
}

// Standalone renders a self-contained HTML document for a report
func (r *Renderer) Standalone(w io.Writer, title, source string, generatedAt time.Time, report *model.AnalysisReport) error {
	return r.fragment.ExecuteTemplate(w, "standalone", struct {
		Title       string
		Source      string
		GeneratedAt time.Time
		CSS         template.CSS
		View        View
	}{title, source, generatedAt, r.css, ForReport(report)})
}
