package handlers

import (
	"log/slog"
	"net/http"

	"jindam_vocab/internal/model"
	"jindam_vocab/internal/service"
	"jindam_vocab/internal/webutil"
)

// ProviderHandler は単語情報と例文生成のエンドポイント。
// レスポンスはプロバイダ形式 ({candidates:[...]} / {error:{message,code}})
type ProviderHandler struct {
	wordInfo service.WordInfoService
	examples service.ExampleService
	logger   *slog.Logger
}

func NewProviderHandler(wordInfo service.WordInfoService, examples service.ExampleService, logger *slog.Logger) *ProviderHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProviderHandler{wordInfo: wordInfo, examples: examples, logger: logger}
}

// PostWordInfo は POST /api/word-info
func (h *ProviderHandler) PostWordInfo(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostWordInfo"))

	var req model.WordInfoRequest
	if err := webutil.DecodeJSONBodyPermissive(w, r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.RespondProviderError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.RespondProviderError(w, logger, err)
		return
	}

	resp, err := h.wordInfo.GetWordInfo(r.Context(), req.Word)
	if err != nil {
		logger.Error("Error getting word info in service", slog.Any("error", err), slog.String("word", req.Word))
		webutil.RespondProviderError(w, logger, err)
		return
	}

	logger.Info("Word info returned", slog.String("word", req.Word))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PostGenerateExamples は POST /api/generate-examples
func (h *ProviderHandler) PostGenerateExamples(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostGenerateExamples"))

	var req model.GenerateExamplesRequest
	if err := webutil.DecodeJSONBodyPermissive(w, r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.RespondProviderError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.RespondProviderError(w, logger, err)
		return
	}

	resp, err := h.examples.GenerateExamples(r.Context(), &req)
	if err != nil {
		logger.Warn("Error generating examples in service", slog.Any("error", err), slog.String("word", req.Word))
		webutil.RespondProviderError(w, logger, err)
		return
	}

	logger.Info("Examples generated", slog.String("word", req.Word))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
