package app

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"strings"

	"github.com/phenrril/atelier/internal/adapters/httpserver"
	"github.com/phenrril/atelier/internal/catalog"
	"github.com/phenrril/atelier/internal/session"
	"github.com/phenrril/atelier/internal/usecase"
	"github.com/phenrril/atelier/internal/views"
)

type App struct {
	Tmpl      *template.Template
	CatalogUC *usecase.CatalogUC
	StoreUC   *usecase.StoreUC
	Sessions  *session.Store
}

func NewApp() (*App, error) {
	repo := catalog.NewRepo()

	app := &App{
		CatalogUC: &usecase.CatalogUC{Catalog: repo},
		StoreUC:   &usecase.StoreUC{Catalog: repo},
		Sessions:  session.NewStore(),
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"mul": func(a, b float64) float64 { return a * b },
		"usd": func(v float64) string {
			if v == float64(int64(v)) {
				return fmt.Sprintf("$%.0f", v)
			}
			return fmt.Sprintf("$%.2f", v)
		},
		"upper": strings.ToUpper,
		"results": func(n int) string {
			return catalog.ResultsLabel(n)
		},
	}

	appEnv := strings.ToLower(os.Getenv("APP_ENV"))
	isDev := appEnv == "" || appEnv == "development" || appEnv == "dev"

	var tmpl *template.Template
	var err error
	if isDev {
		tmpl, err = template.New("layout").Funcs(funcMap).ParseGlob("internal/views/*.html")
		if err != nil {
			// fall back to the embedded copies when running outside the
			// repo root
			tmpl, err = template.New("layout").Funcs(funcMap).ParseFS(views.FS, "*.html")
		}
	} else {
		tmpl, err = template.New("layout").Funcs(funcMap).ParseFS(views.FS, "*.html")
	}
	if err != nil {
		return nil, err
	}
	app.Tmpl = tmpl

	return app, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Tmpl, a.CatalogUC, a.StoreUC, a.Sessions)
}
