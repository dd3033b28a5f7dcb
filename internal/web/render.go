package web

import (
	"embed"
	"html/template"
	"io"
	"math"
	"time"

	"github.com/phrazzld/flashcard-generator/internal/session"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// loadingRefresh is how often the page reloads while a request is pending.
const loadingRefresh = 1

type pageData struct {
	View           session.View
	RefreshSeconds int
}

func newPageData(v session.View, noticeTimeout time.Duration) pageData {
	data := pageData{View: v}
	switch {
	case v.Loading:
		data.RefreshSeconds = loadingRefresh
	case v.Notice != "":
		// Reload once the notice has expired so it disappears without a click.
		data.RefreshSeconds = int(math.Ceil(noticeTimeout.Seconds())) + 1
	}
	return data
}

func renderPage(w io.Writer, data pageData) error {
	return pageTmpl.ExecuteTemplate(w, "page.html", data)
}
