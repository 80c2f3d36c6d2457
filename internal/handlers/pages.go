package handlers

import (
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/common"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/config"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/models"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/store"
)

const (
	themeCookie    = "analyst_theme"
	languageCookie = "analyst_lang"
)

// FindPagesDir locates the pages directory.
func FindPagesDir() string {
	dirs := []string{
		"./pages",
		"../pages",
		"../../pages",
		".",
	}

	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			abs, _ := filepath.Abs(dir)
			return abs
		}
	}

	return "."
}

func loadTemplates() *template.Template {
	pagesDir := FindPagesDir()

	templates := template.Must(template.ParseGlob(filepath.Join(pagesDir, "*.html")))
	template.Must(templates.ParseGlob(filepath.Join(pagesDir, "partials", "*.html")))

	return templates
}

// readTheme resolves the UI theme from query then cookie, defaulting to dark.
// A query override is written back as a cookie so it sticks across pages.
func readTheme(w http.ResponseWriter, r *http.Request) string {
	if v := r.URL.Query().Get("theme"); v == "dark" || v == "light" {
		http.SetCookie(w, &http.Cookie{Name: themeCookie, Value: v, Path: "/"})
		return v
	}
	if c, err := r.Cookie(themeCookie); err == nil && (c.Value == "dark" || c.Value == "light") {
		return c.Value
	}
	return "dark"
}

func readLanguage(w http.ResponseWriter, r *http.Request) models.Language {
	if v := r.URL.Query().Get("lang"); v != "" {
		lang := models.ParseLanguage(v)
		http.SetCookie(w, &http.Cookie{Name: languageCookie, Value: string(lang), Path: "/"})
		return lang
	}
	if c, err := r.Cookie(languageCookie); err == nil {
		return models.ParseLanguage(c.Value)
	}
	return models.LanguageZH
}

// DashboardHandler serves the watchlist dashboard page.
type DashboardHandler struct {
	logger    *common.Logger
	templates *template.Template
	watchlist *store.WatchlistStore
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(logger *common.Logger, watchlist *store.WatchlistStore) *DashboardHandler {
	return &DashboardHandler{
		logger:    logger,
		templates: loadTemplates(),
		watchlist: watchlist,
	}
}

// ServeHTTP renders the dashboard page.
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	selected := make(map[string]bool)
	for _, ticker := range h.watchlist.Selected() {
		selected[ticker] = true
	}

	data := map[string]interface{}{
		"Page":          "dashboard",
		"Theme":         readTheme(w, r),
		"Language":      string(readLanguage(w, r)),
		"Watchlist":     h.watchlist.Tickers(),
		"Selected":      selected,
		"PortalVersion": config.GetVersion(),
	}

	if err := h.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		if h.logger != nil {
			h.logger.Error().Str("template", "dashboard.html").Str("error", err.Error()).Msg("failed to render dashboard")
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// PortfolioPageHandler serves the portfolio analysis page.
type PortfolioPageHandler struct {
	logger    *common.Logger
	templates *template.Template
}

// NewPortfolioPageHandler creates a new portfolio page handler.
func NewPortfolioPageHandler(logger *common.Logger) *PortfolioPageHandler {
	return &PortfolioPageHandler{
		logger:    logger,
		templates: loadTemplates(),
	}
}

// ServeHTTP renders the portfolio page.
func (h *PortfolioPageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Page":          "portfolio",
		"Theme":         readTheme(w, r),
		"Language":      string(readLanguage(w, r)),
		"PortalVersion": config.GetVersion(),
	}

	if err := h.templates.ExecuteTemplate(w, "portfolio.html", data); err != nil {
		if h.logger != nil {
			h.logger.Error().Str("template", "portfolio.html").Str("error", err.Error()).Msg("failed to render portfolio page")
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
