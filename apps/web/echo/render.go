package echoapi

import (
	"html/template"
	"io"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/smartschool/connect/core/dashboard"
	"github.com/smartschool/connect/core/landing"
	"github.com/smartschool/connect/core/session"
	appfs "github.com/smartschool/connect/fs"
)

const (
	webTemplatesDir = "assets/templates/web"
	layoutTemplate  = "_base.gohtml"

	pageLanding = "landing"
	pageLogin   = "login"
)

var (
	partials = []string{layoutTemplate, "_dashboard.gohtml"}
	pages    = []string{
		pageLanding,
		pageLogin,
		session.ViewStudent.String(),
		session.ViewTeacher.String(),
		session.ViewAdmin.String(),
	}
)

// pageData is the data every page template is executed with.
type pageData struct {
	Title     string
	Role      session.Role
	Landing   *landing.Page
	Dashboard *dashboard.Dashboard
	Roles     []session.Role
}

// pageRenderer renders the embedded web templates. Each page is parsed along
// with the layout & the shared partials and executed through the layout.
type pageRenderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*pageRenderer)(nil)

func parsePages() (*pageRenderer, error) {
	r := &pageRenderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		patterns := make([]string, 0, len(partials)+1)
		for _, p := range partials {
			patterns = append(patterns, path.Join(webTemplatesDir, p))
		}
		patterns = append(patterns, path.Join(webTemplatesDir, name+".gohtml"))

		tmpl, err := template.ParseFS(appfs.FS, patterns...)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing page %q", name)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

func mustParsePages() *pageRenderer {
	r, err := parsePages()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *pageRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown page %q", name)
	}
	return tmpl.ExecuteTemplate(w, layoutTemplate, data)
}
