// Package client は jindam-vocab バックエンドの HTTP クライアントと、
// ブラウザクライアントの単語入力フローを再現するセッションを提供します。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jindam_vocab/internal/extractor"
	"jindam_vocab/internal/model"
)

const (
	defaultTimeout = 30 * time.Second
	// healthTimeout はヘルスチェック専用のタイムアウト
	healthTimeout = 2 * time.Second
	// quotaMarker はクォータ超過を示すエラーメッセージの部分文字列
	quotaMarker = "API 할당량 초과"
)

// APIClient はバックエンドの /api を呼び出します
type APIClient struct {
	baseURL    string
	clientID   string
	httpClient *http.Client
	log        *slog.Logger
}

type Option func(*APIClient)

// WithHTTPClient は HTTP クライアントを差し替えます
func WithHTTPClient(c *http.Client) Option {
	return func(a *APIClient) { a.httpClient = c }
}

// WithClientID は単語帳の名前空間 (X-Client-ID) を指定します
func WithClientID(id string) Option {
	return func(a *APIClient) { a.clientID = id }
}

func WithTimeout(d time.Duration) Option {
	return func(a *APIClient) { a.httpClient.Timeout = d }
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *APIClient) { a.log = logger.With("adapter", "jindam-api") }
}

func NewAPIClient(baseURL string, opts ...Option) *APIClient {
	a := &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        slog.Default().With("adapter", "jindam-api"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Health は GET /api/health。2秒で応答が無ければ ConnectivityError
func (a *APIClient) Health(ctx context.Context) (*model.HealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var resp model.HealthResponse
	if err := a.do(ctx, http.MethodGet, "/api/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// WordInfo は POST /api/word-info。解析できない応答は空の WordInfo に縮退します
func (a *APIClient) WordInfo(ctx context.Context, word string) (model.WordInfo, error) {
	var resp model.ProviderResponse
	if err := a.do(ctx, http.MethodPost, "/api/word-info", model.WordInfoRequest{Word: word}, &resp); err != nil {
		return model.WordInfo{}, err
	}
	info, err := extractor.ParseWordInfo(&resp)
	if err != nil {
		a.log.DebugContext(ctx, "word info not parsable", slog.String("word", word), slog.String("error", err.Error()))
	}
	return extractor.WordInfoOrBlank(info, err), nil
}

// GenerateExamples は POST /api/generate-examples。解析できない応答は空のリストに縮退します
func (a *APIClient) GenerateExamples(ctx context.Context, info model.GenerateExamplesRequest) ([]model.Example, error) {
	var resp model.ProviderResponse
	if err := a.do(ctx, http.MethodPost, "/api/generate-examples", info, &resp); err != nil {
		return nil, err
	}
	examples, err := extractor.ParseExamples(&resp)
	if err != nil {
		a.log.DebugContext(ctx, "examples not parsable", slog.String("word", info.Word), slog.String("error", err.Error()))
		return []model.Example{}, nil
	}
	return examples, nil
}

// SaveWord は POST /api/words
func (a *APIClient) SaveWord(ctx context.Context, req model.SaveWordRequest) (*model.VocabularyEntry, error) {
	var entry model.VocabularyEntry
	if err := a.do(ctx, http.MethodPost, "/api/words", req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListWords は GET /api/words。date が空なら全件
func (a *APIClient) ListWords(ctx context.Context, date string) ([]*model.VocabularyEntry, error) {
	path := "/api/words"
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
	}
	var resp model.VocabularyListResponse
	if err := a.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Words, nil
}

func (a *APIClient) ListDates(ctx context.Context) ([]string, error) {
	var resp struct {
		Dates []string `json:"dates"`
	}
	if err := a.do(ctx, http.MethodGet, "/api/words/dates", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Dates, nil
}

func (a *APIClient) GetWord(ctx context.Context, id string) (*model.VocabularyEntry, error) {
	var entry model.VocabularyEntry
	if err := a.do(ctx, http.MethodGet, "/api/words/"+url.PathEscape(id), nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (a *APIClient) DeleteWord(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/api/words/"+url.PathEscape(id), nil, nil)
}

// ImportWords は POST /api/words/import。legacy はローカルストレージから書き出した JSON 配列
func (a *APIClient) ImportWords(ctx context.Context, legacy []byte) (*model.ImportResult, error) {
	var result model.ImportResult
	if err := a.do(ctx, http.MethodPost, "/api/words/import", json.RawMessage(legacy), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// do はリクエストを送り、2xx ならボディを out にデコードします。
// 通信失敗は ConnectivityError、非2xx は UpstreamError に変換します
func (a *APIClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("client: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.clientID != "" {
		req.Header.Set("X-Client-ID", a.clientID)
	}

	a.log.DebugContext(ctx, "api request", slog.String("method", method), slog.String("path", path))

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return &model.ConnectivityError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &model.ConnectivityError{Op: method + " " + path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstreamErr := decodeErrorBody(resp.StatusCode, respBody)
		a.log.WarnContext(ctx, "api error response",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", upstreamErr.Message),
		)
		return upstreamErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &model.UpstreamError{StatusCode: resp.StatusCode, Message: ""}
	}
	return nil
}

// decodeErrorBody は {error:{message,...}} からメッセージを取り出します。
// 429 以外でもクォータ超過のメッセージが入っていればクォータ扱いにします
func decodeErrorBody(status int, body []byte) *model.UpstreamError {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		message = payload.Error.Message
	}

	if strings.Contains(message, quotaMarker) {
		status = http.StatusTooManyRequests
	}
	return &model.UpstreamError{StatusCode: status, Message: message}
}

// IsConnectivity は通信エラーかどうか
func IsConnectivity(err error) bool {
	return errors.Is(err, model.ErrConnectivity)
}
