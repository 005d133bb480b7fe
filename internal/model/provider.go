// internal/model/provider.go
package model

// ProviderResponse はプロバイダ形式のレスポンス
// 成功時は candidates[0].content.parts[0].text にテキストが入り、失敗時は error が入る
type ProviderResponse struct {
	Candidates []Candidate     `json:"candidates,omitempty"`
	Error      *ProviderError `json:"error,omitempty"`
}

type Candidate struct {
	Content Content `json:"content"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

// ProviderError はプロバイダ形式のエラーボディ {error: {message, code}}
type ProviderError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// NewTextResponse はテキスト1件だけを持つレスポンスを作ります
func NewTextResponse(text string) *ProviderResponse {
	return &ProviderResponse{
		Candidates: []Candidate{
			{Content: Content{Parts: []Part{{Text: text}}}},
		},
	}
}

// NewProviderErrorResponse はエラーボディを作ります
func NewProviderErrorResponse(message string, code int) *ProviderResponse {
	return &ProviderResponse{Error: &ProviderError{Message: message, Code: code}}
}

// HealthResponse は /api/health のレスポンス
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	API       string `json:"api"`
}
