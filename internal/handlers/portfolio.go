package handlers

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/ai"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/common"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/portfolio"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/store"
)

const maxUploadBytes = 20 << 20

// PortfolioHandler runs the screenshot analysis pipeline.
type PortfolioHandler struct {
	logger      *common.Logger
	pipeline    *portfolio.Pipeline
	credentials *store.CredentialStore
	busy        atomic.Bool
}

// NewPortfolioHandler creates a new portfolio analysis handler.
func NewPortfolioHandler(logger *common.Logger, pipeline *portfolio.Pipeline, credentials *store.CredentialStore) *PortfolioHandler {
	return &PortfolioHandler{
		logger:      logger,
		pipeline:    pipeline,
		credentials: credentials,
	}
}

// ServeHTTP handles POST /api/portfolio/analyze. Screenshots arrive as
// multipart form files under the "images" field.
func (h *PortfolioHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	if !h.busy.CompareAndSwap(false, true) {
		WriteError(w, http.StatusConflict, "a portfolio analysis is already running")
		return
	}
	defer h.busy.Store(false)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid multipart upload")
		return
	}
	defer r.MultipartForm.RemoveAll()

	images, err := readImages(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	creds := h.credentials.Get(r.Context())

	result, err := h.pipeline.Analyze(r.Context(), images, creds)
	if err != nil {
		if errors.Is(err, portfolio.ErrValidation) {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error().Str("error", err.Error()).Msg("Portfolio analysis failed")
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

func readImages(r *http.Request) ([]ai.InlineImage, error) {
	if r.MultipartForm == nil {
		return nil, errors.New("no images uploaded")
	}

	files := r.MultipartForm.File["images"]
	images := make([]ai.InlineImage, 0, len(files))
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			return nil, errors.New("could not read uploaded image")
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, errors.New("could not read uploaded image")
		}

		mimeType := http.DetectContentType(data)
		images = append(images, ai.InlineImage{
			Data:     base64.StdEncoding.EncodeToString(data),
			MIMEType: mimeType,
		})
	}
	return images, nil
}
