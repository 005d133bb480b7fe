package handlers

import (
	"log/slog"
	"net/http"

	"jindam_vocab/internal/middleware"
	"jindam_vocab/internal/model"
	"jindam_vocab/internal/service"
	"jindam_vocab/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type VocabularyHandler struct {
	service service.VocabularyService
	logger  *slog.Logger
}

func NewVocabularyHandler(s service.VocabularyService, logger *slog.Logger) *VocabularyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VocabularyHandler{service: s, logger: logger}
}

func (h *VocabularyHandler) handlerLogger(r *http.Request, name string) (*slog.Logger, string) {
	namespace := middleware.GetNamespace(r.Context())
	return h.logger.With(slog.String("handler", name), slog.String("namespace", namespace)), namespace
}

// PostWord は単語を単語帳に保存します
func (h *VocabularyHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger, namespace := h.handlerLogger(r, "PostWord")

	var req model.SaveWordRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	entry, err := h.service.Save(r.Context(), namespace, &req)
	if err != nil {
		logger.Error("Error saving word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word saved successfully", slog.String("id", entry.ID))
	webutil.RespondWithJSON(w, http.StatusCreated, entry, logger)
}

// GetWords は単語帳の一覧。?date=YYYY-MM-DD で絞り込み
func (h *VocabularyHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger, namespace := h.handlerLogger(r, "GetWords")
	date := r.URL.Query().Get("date")

	words, err := h.service.List(r.Context(), namespace, date)
	if err != nil {
		logger.Error("Error listing words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if words == nil {
		words = []*model.VocabularyEntry{}
	}

	logger.Info("Words listed successfully", slog.Int("count", len(words)), slog.String("date", date))
	webutil.RespondWithJSON(w, http.StatusOK, model.VocabularyListResponse{Words: words, Count: len(words)}, logger)
}

// GetDates は保存日の一覧
func (h *VocabularyHandler) GetDates(w http.ResponseWriter, r *http.Request) {
	logger, namespace := h.handlerLogger(r, "GetDates")

	dates, err := h.service.Dates(r.Context(), namespace)
	if err != nil {
		logger.Error("Error listing dates in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if dates == nil {
		dates = []string{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string][]string{"dates": dates}, logger)
}

func (h *VocabularyHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger, namespace := h.handlerLogger(r, "GetWord")
	id := chi.URLParam(r, "id")

	entry, err := h.service.Get(r.Context(), namespace, id)
	if err != nil {
		logger.Warn("Error getting word in service", slog.Any("error", err), slog.String("id", id))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, entry, logger)
}

func (h *VocabularyHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger, namespace := h.handlerLogger(r, "DeleteWord")
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), namespace, id); err != nil {
		logger.Warn("Error deleting word in service", slog.Any("error", err), slog.String("id", id))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word deleted successfully", slog.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}

// PostImport はブラウザのローカルストレージから書き出した JSON 配列を取り込みます
func (h *VocabularyHandler) PostImport(w http.ResponseWriter, r *http.Request) {
	logger, namespace := h.handlerLogger(r, "PostImport")

	body, err := webutil.ReadBody(w, r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.Import(r.Context(), namespace, body)
	if err != nil {
		logger.Warn("Error importing words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Words imported", slog.Int("imported", result.Imported), slog.Int("skipped", result.Skipped))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
