package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/common"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/config"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/models"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/store"
)

// SettingsHandler serves the settings page and handles API key updates.
type SettingsHandler struct {
	logger      *common.Logger
	templates   *template.Template
	credentials *store.CredentialStore
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(logger *common.Logger, credentials *store.CredentialStore) *SettingsHandler {
	return &SettingsHandler{
		logger:      logger,
		templates:   loadTemplates(),
		credentials: credentials,
	}
}

// HandleSettings serves GET /settings.
func (h *SettingsHandler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	creds := h.credentials.Get(r.Context())

	data := map[string]interface{}{
		"Page":             "settings",
		"Theme":            readTheme(w, r),
		"Language":         string(readLanguage(w, r)),
		"ChatKeySet":       creds.ChatAPIKey != "",
		"ChatKeyPreview":   keyPreview(creds.ChatAPIKey),
		"VisionKeySet":     creds.VisionAPIKey != "",
		"VisionKeyPreview": keyPreview(creds.VisionAPIKey),
		"Saved":            r.URL.Query().Get("saved") == "1",
		"PortalVersion":    config.GetVersion(),
	}

	if err := h.templates.ExecuteTemplate(w, "settings.html", data); err != nil {
		if h.logger != nil {
			h.logger.Error().Str("template", "settings.html").Str("error", err.Error()).Msg("failed to render settings")
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// HandleSaveSettings handles POST /settings. Blank fields leave the stored
// key untouched so users can update one key without retyping the other.
func (h *SettingsHandler) HandleSaveSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	h.credentials.Set(r.Context(), models.Credentials{
		ChatAPIKey:   strings.TrimSpace(r.FormValue("chat_api_key")),
		VisionAPIKey: strings.TrimSpace(r.FormValue("vision_api_key")),
	})

	http.Redirect(w, r, "/settings?saved=1", http.StatusFound)
}

func keyPreview(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return key
	}
	return key[len(key)-4:]
}
