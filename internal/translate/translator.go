// Package translate は例文の翻訳プロバイダへのアダプタです
package translate

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"jindam_vocab/internal/model"

	gtranslate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// ErrTranslatorUnavailable は翻訳プロバイダが設定されていないことを表します
var ErrTranslatorUnavailable = errors.New("translator unavailable")

var (
	sourceLanguage = language.MustParse("zh-CN")
	targetLanguage = language.Korean
)

// Translator は中国語の文を韓国語に翻訳します
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Settings は GoogleTranslator の接続設定
type Settings struct {
	CredentialsJSON string
	CredentialsFile string
	Endpoint        string
}

// Configured は認証情報かエンドポイントが指定されているか
func (s Settings) Configured() bool {
	return s.CredentialsJSON != "" || s.CredentialsFile != "" || s.Endpoint != ""
}

// ClientOptions は設定を Google API クライアントのオプションに変換します。
// エンドポイントだけが指定された場合は認証なしで接続します (エミュレータ/テスト用)
func (s Settings) ClientOptions() []option.ClientOption {
	var opts []option.ClientOption
	switch {
	case s.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(s.CredentialsJSON)))
	case s.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(s.CredentialsFile))
	case s.Endpoint != "":
		opts = append(opts, option.WithoutAuthentication())
	}
	if s.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(s.Endpoint))
	}
	return opts
}

// GoogleTranslator は Cloud Translation (v2) をサービスアカウントで呼び出します
type GoogleTranslator struct {
	client *gtranslate.Client
}

func NewGoogleTranslator(ctx context.Context, opts ...option.ClientOption) (*GoogleTranslator, error) {
	client, err := gtranslate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("translate.NewGoogleTranslator: %w", err)
	}
	return &GoogleTranslator{client: client}, nil
}

// New は設定に応じて Translator を返します。未設定なら NopTranslator
func New(ctx context.Context, s Settings) (Translator, error) {
	if !s.Configured() {
		return NopTranslator{}, nil
	}
	return NewGoogleTranslator(ctx, s.ClientOptions()...)
}

func (g *GoogleTranslator) Translate(ctx context.Context, text string) (string, error) {
	resp, err := g.client.Translate(ctx, []string{text}, targetLanguage, &gtranslate.Options{
		Source: sourceLanguage,
		Format: gtranslate.Text,
	})
	if err != nil {
		return "", mapError(err)
	}
	if len(resp) == 0 || strings.TrimSpace(resp[0].Text) == "" {
		return "", &model.UpstreamError{StatusCode: http.StatusBadGateway, Message: "empty translation"}
	}
	return resp[0].Text, nil
}

func (g *GoogleTranslator) Close() error {
	return g.client.Close()
}

// mapError は SDK のエラーを model のエラー分類に変換します
func mapError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == http.StatusTooManyRequests {
			return &model.UpstreamError{StatusCode: gerr.Code, Message: model.QuotaExceededMessage}
		}
		return &model.UpstreamError{StatusCode: gerr.Code, Message: gerr.Message}
	}
	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) ||
		errors.Is(err, context.DeadlineExceeded) {
		return &model.ConnectivityError{Op: "translate", Err: err}
	}
	return fmt.Errorf("translate: %w", err)
}

// NopTranslator は常に ErrTranslatorUnavailable を返します
type NopTranslator struct{}

func (NopTranslator) Translate(context.Context, string) (string, error) {
	return "", ErrTranslatorUnavailable
}
