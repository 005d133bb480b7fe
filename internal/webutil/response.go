// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"jindam_vocab/internal/model"

	"github.com/go-playground/validator/v10"
)

// HandleError はエラーを解釈し、{error:{code,message,field}} 形式で返します
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var appErr *model.AppError
	var detail model.ErrorDetail
	if errors.As(err, &appErr) {
		detail = appErr.Detail
	} else {
		detail = defaultDetail(err, statusCode)
		if statusCode >= http.StatusInternalServerError {
			logger.Error("Unhandled error", slog.Any("error", err))
		}
	}

	RespondWithJSON(w, statusCode, model.APIErrorResponse{Error: detail}, logger)
}

// RespondProviderError はプロバイダ形式 {error:{message,code}} でエラーを返します。
// word-info と generate-examples はクライアント互換のためこちらを使う
func RespondProviderError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	message := "서버 오류"
	var appErr *model.AppError
	var upstreamErr *model.UpstreamError
	switch {
	case errors.Is(err, model.ErrUpstreamQuota):
		message = model.QuotaExceededMessage
	case errors.As(err, &appErr):
		message = appErr.Detail.Message
	case errors.As(err, &upstreamErr) && upstreamErr.Message != "":
		message = upstreamErr.Message
	case errors.Is(err, model.ErrInvalidInput):
		message = "잘못된 요청입니다."
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error("Provider endpoint failed", slog.Any("error", err))
	}

	RespondWithJSON(w, statusCode, model.NewProviderErrorResponse(message, statusCode), logger)
}

func defaultDetail(err error, statusCode int) model.ErrorDetail {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.ErrorDetail{Code: "NOT_FOUND", Message: "요청한 리소스를 찾을 수 없습니다."}
	case errors.Is(err, model.ErrInvalidInput):
		return model.ErrorDetail{Code: "INVALID_INPUT", Message: "잘못된 요청입니다."}
	case errors.Is(err, model.ErrConflict):
		return model.ErrorDetail{Code: "CONFLICT", Message: "요청이 다른 요청과 충돌했습니다. 다시 시도해주세요."}
	case statusCode == http.StatusTooManyRequests:
		return model.ErrorDetail{Code: "UPSTREAM_QUOTA", Message: model.QuotaExceededMessage}
	case statusCode == http.StatusBadGateway:
		return model.ErrorDetail{Code: "UPSTREAM_ERROR", Message: "외부 서비스 호출에 실패했습니다."}
	default:
		return model.ErrorDetail{Code: "INTERNAL_SERVER_ERROR", Message: "서버 내부 오류가 발생했습니다."}
	}
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	// AppErrorの場合は、ラップされたエラーで判定する
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrUpstreamQuota):
		return http.StatusTooManyRequests
	case errors.Is(err, model.ErrUpstream), errors.Is(err, model.ErrConnectivity):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"응답을 생성하는 중 오류가 발생했습니다."}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// NewValidationError はバリデーションエラーの先頭1件を韓国語メッセージの AppError にします
func NewValidationError(errs validator.ValidationErrors) *model.AppError {
	first := errs[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		first.Translate(Trans),
		first.Field(),
		model.ErrInvalidInput,
	)
}

// ValidateStruct は構造体を検証し、失敗した場合は AppError を返します
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return NewValidationError(validationErrors)
	}
	return err
}
