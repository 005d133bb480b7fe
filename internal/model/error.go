// internal/model/error.go
package model

import (
	"errors"
	"fmt"
	"net/http"
)

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用

	// 抽出パイプライン・上流プロバイダ関連
	ErrParse         = errors.New("parse error")
	ErrUpstream      = errors.New("upstream error")
	ErrUpstreamQuota = errors.New("upstream quota exhausted")
	ErrConnectivity  = errors.New("connectivity error")
)

// QuotaExceededMessage はクォータ超過時のエラーメッセージ。
// クライアントはこの部分文字列 ("API 할당량 초과") で判定する
const QuotaExceededMessage = "API 할당량 초과: 현재 너무 많은 요청이 발생했습니다. 잠시 후 다시 시도해주세요."

// ErrorDetail はエラーレスポンスの中身
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はクライアントに返す詳細と、ステータス判定用の根本エラーを持ちます
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Detail.Code, e.Detail.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ParseError はプロバイダのテキストから構造を取り出せなかったことを表します。
// 呼び出し側で空の値に縮退させ、ユーザーにはそのまま見せない
type ParseError struct {
	Reason string
}

func NewParseError(format string, args ...any) *ParseError {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// UpstreamError は上流(バックエンド/翻訳プロバイダ)からの非2xxや不正なペイロード。
// StatusCode が 429 の場合は ErrUpstreamQuota として扱われます
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("upstream error (status %d): %s", e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	if e.IsQuota() {
		return ErrUpstreamQuota
	}
	return ErrUpstream
}

// IsQuota はクォータ超過かどうか
func (e *UpstreamError) IsQuota() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// ConnectivityError はネットワークエラーやタイムアウト
type ConnectivityError struct {
	Op  string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("connectivity error during %s: %v", e.Op, e.Err)
}

// Is は errors.Is(err, ErrConnectivity) を満たすために実装
func (e *ConnectivityError) Is(target error) bool {
	return target == ErrConnectivity
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}
