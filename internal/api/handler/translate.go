package handler

import (
	"encoding/json"
	"net/http"

	"github.com/prathamesh424/pixelwalk-go/internal/api/request"
	"github.com/prathamesh424/pixelwalk-go/internal/api/response"
	"github.com/prathamesh424/pixelwalk-go/internal/services/translate"
)

// TranslateHandler proxies chat text to the external translator
type TranslateHandler struct {
	client *translate.Client
}

// NewTranslateHandler creates a new translate handler
func NewTranslateHandler(client *translate.Client) *TranslateHandler {
	return &TranslateHandler{client: client}
}

// Translate handles POST /api/v1/translate
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req request.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Text == "" {
		WriteError(w, NewInvalidRequestError("text is required"))
		return
	}
	if req.TargetLanguage == "" {
		WriteError(w, NewInvalidRequestError("target_language is required"))
		return
	}

	translated, err := h.client.Translate(r.Context(), req.Text, req.TargetLanguage)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TranslateResponse{TranslatedText: translated})
}
