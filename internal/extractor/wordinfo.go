package extractor

import (
	"regexp"
	"strings"

	"jindam_vocab/internal/model"
)

var (
	pinyinLabel  = regexp.MustCompile(`(?i)병음\s*:\s*([^\n]+)`)
	meaningLabel = regexp.MustCompile(`(?i)의미\s*:\s*([^\n]+)`)
)

var (
	pinyinIndicators  = []string{"병음", "발음"}
	meaningIndicators = []string{"의미", "뜻"}
)

// ExtractWordInfo は "병음: ..." と "의미: ..." の行から単語情報を取り出します。
// ラベルの直接マッチに失敗した場合は行単位の走査で補います。
// どちらかが取れなければ *model.ParseError を返します
func ExtractWordInfo(text string) (model.WordInfo, error) {
	if err := errorPayload(text); err != nil {
		return model.WordInfo{}, err
	}

	if info, ok := matchWordInfo(text); ok {
		return info, nil
	}
	if info, ok := scanWordInfo(text); ok {
		return info, nil
	}
	return model.WordInfo{}, model.NewParseError("pinyin or meaning not found")
}

// ParseWordInfo はプロバイダのレスポンスから単語情報を取り出します
func ParseWordInfo(resp *model.ProviderResponse) (model.WordInfo, error) {
	text, err := ProviderText(resp)
	if err != nil {
		return model.WordInfo{}, err
	}
	return ExtractWordInfo(text)
}

// WordInfoOrBlank は解析失敗を空の WordInfo に縮退させます
func WordInfoOrBlank(info model.WordInfo, err error) model.WordInfo {
	if err != nil {
		return model.WordInfo{}
	}
	return info
}

func matchWordInfo(text string) (model.WordInfo, bool) {
	p := pinyinLabel.FindStringSubmatch(text)
	m := meaningLabel.FindStringSubmatch(text)
	if p == nil || m == nil {
		return model.WordInfo{}, false
	}
	return model.WordInfo{
		Pinyin:  CleanPinyin(p[1]),
		Meaning: strings.TrimSpace(m[1]),
	}, true
}

func scanWordInfo(text string) (model.WordInfo, bool) {
	var pinyin, meaning string
	for _, line := range nonBlankLines(text) {
		if containsAny(line, pinyinIndicators) {
			pinyin = valueAfterLabel(line, pinyinIndicators)
		} else if containsAny(line, meaningIndicators) {
			meaning = valueAfterLabel(line, meaningIndicators)
		}
	}
	if pinyin == "" || meaning == "" {
		return model.WordInfo{}, false
	}
	return model.WordInfo{Pinyin: CleanPinyin(pinyin), Meaning: meaning}, true
}

// valueAfterLabel は最初のコロンの後ろ、無ければ指示語の後ろの文字列を返します
func valueAfterLabel(line string, indicators []string) string {
	if parts := strings.Split(line, ":"); len(parts) > 1 {
		if v := strings.TrimSpace(parts[1]); v != "" {
			return v
		}
	}
	for _, ind := range indicators {
		if _, after, found := strings.Cut(line, ind); found {
			if v := strings.TrimSpace(after); v != "" {
				return v
			}
		}
	}
	return ""
}

func nonBlankLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
