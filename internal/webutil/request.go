package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"jindam_vocab/internal/model"
)

// maxBodyBytes はリクエストボディの上限 (インポートを含む)
const maxBodyBytes = 5 << 20

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラー
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	return decodeJSONBody(w, r, dst, true)
}

// DecodeJSONBodyPermissive は未知のフィールドを無視してデコードします (旧クライアント互換の API 用)
func DecodeJSONBodyPermissive(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	return decodeJSONBody(w, r, dst, false)
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}, strict bool) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if strict {
		decoder.DisallowUnknownFields()
	}

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return model.NewAppError("INVALID_REQUEST_BODY", "요청 본문이 비어 있습니다.", "", model.ErrInvalidInput)
		}
		return model.NewAppError("INVALID_REQUEST_BODY", "요청 본문의 형식이 올바르지 않습니다.", "", model.ErrInvalidInput)
	}
	return nil
}

// ReadBody はボディをそのまま読み込みます
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, model.ErrInvalidInput
	}
	defer r.Body.Close()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, model.NewAppError("INVALID_REQUEST_BODY", "요청 본문을 읽을 수 없습니다.", "", model.ErrInvalidInput)
	}
	return body, nil
}
