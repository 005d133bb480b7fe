// Package extractor はプロバイダが返す自由形式のテキストから
// 単語情報 (병음/의미) と例文・単語カードを取り出します。
//
// 解析に失敗しても呼び出し元には空の値で縮退できるように、
// 失敗は常に *model.ParseError として返します。
package extractor

import (
	"encoding/json"
	"strings"

	"jindam_vocab/internal/model"
)

// ProviderText は candidates[0].content.parts[0].text を取り出します。
// エラーボディや想定外の形の場合はテキスト解析を行わずに ParseError を返します
func ProviderText(resp *model.ProviderResponse) (string, error) {
	if resp == nil {
		return "", model.NewParseError("empty provider response")
	}
	if resp.Error != nil {
		return "", model.NewParseError("provider returned error: %s", resp.Error.Message)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", model.NewParseError("unexpected provider response shape")
	}
	text := resp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", model.NewParseError("provider response has no text")
	}
	return text, nil
}

// DecodeProviderResponse はレスポンスボディをデコードしてテキストを返します
func DecodeProviderResponse(body []byte) (string, error) {
	var resp model.ProviderResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", model.NewParseError("invalid provider json: %v", err)
	}
	return ProviderText(&resp)
}

// errorPayload はテキスト自体が {error: {...}} 形式のJSONになっていないかを確認します
func errorPayload(text string) error {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") {
		return nil
	}
	var resp model.ProviderResponse
	if err := json.Unmarshal([]byte(trimmed), &resp); err != nil {
		return nil
	}
	if resp.Error != nil {
		return model.NewParseError("text is an error payload: %s", resp.Error.Message)
	}
	return nil
}
