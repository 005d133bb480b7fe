package extractor

import (
	"regexp"
	"strings"

	"jindam_vocab/internal/model"
)

// exampleBlock は "<n>. 중국어 예문: ...\n한국어 번역: ...\n단어 분석: ..." のブロック
var exampleBlock = regexp.MustCompile(
	`(\d+)[.\s]*중국어 예문\s*:\s*([^\n]+)\s*한국어 번역\s*:\s*([^\n]+)\s*단어 분석\s*:\s*([^\n]+)`,
)

var (
	numberedLine   = regexp.MustCompile(`^\d+\.`)
	chineseValue   = regexp.MustCompile(`예문\s*:\s*(.+)`)
	translateValue = regexp.MustCompile(`번역\s*:\s*(.+)`)
	koreanValue    = regexp.MustCompile(`한국어\s*:\s*(.+)`)
	analysisValue  = regexp.MustCompile(`분석\s*:\s*(.+)`)
)

// Strategy はテキストから例文を取り出す手順の1つ
type Strategy func(text string) []model.Example

// strategies は ExtractExamples が順に試す手順。前の手順が0件のときだけ次を使う
var strategies = []Strategy{MatchBlocks, ScanLines}

// ExtractExamples は例文を取り出します。何も取れない場合は空のスライス
func ExtractExamples(text string) []model.Example {
	for _, strategy := range strategies {
		if examples := strategy(text); len(examples) > 0 {
			return examples
		}
	}
	return []model.Example{}
}

// ParseExamples はプロバイダのレスポンスから例文を取り出します。
// エラーボディや想定外の形は ParseError、テキストはあるが0件なら空スライスと nil
func ParseExamples(resp *model.ProviderResponse) ([]model.Example, error) {
	text, err := ProviderText(resp)
	if err != nil {
		return []model.Example{}, err
	}
	if err := errorPayload(text); err != nil {
		return []model.Example{}, err
	}
	return ExtractExamples(text), nil
}

// MatchBlocks は定型ブロックの正規表現でテキスト全体を走査します
func MatchBlocks(text string) []model.Example {
	matches := exampleBlock.FindAllStringSubmatch(text, -1)
	examples := make([]model.Example, 0, len(matches))
	for _, m := range matches {
		examples = append(examples, model.Example{
			Chinese:   strings.TrimSpace(m[2]),
			Korean:    strings.TrimSpace(m[3]),
			WordCards: Segment(m[4]),
		})
	}
	return examples
}

// ScanLines は1行ずつ見ていくフォールバック。
// 番号付きの行または "중국어 예문" を含む行で新しい例文を始めます
func ScanLines(text string) []model.Example {
	var (
		examples []model.Example
		current  *model.Example
	)

	for _, line := range nonBlankLines(text) {
		if numberedLine.MatchString(line) || strings.Contains(line, "중국어 예문") {
			if current != nil {
				examples = append(examples, *current)
			}
			current = &model.Example{WordCards: []model.WordCard{}}
			if m := chineseValue.FindStringSubmatch(line); m != nil {
				current.Chinese = strings.TrimSpace(m[1])
			}
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case strings.Contains(line, "한국어 번역") || strings.Contains(line, "한국어:"):
			m := translateValue.FindStringSubmatch(line)
			if m == nil {
				m = koreanValue.FindStringSubmatch(line)
			}
			if m != nil {
				current.Korean = strings.TrimSpace(m[1])
			}
		case strings.Contains(line, "단어 분석") || strings.Contains(line, "분석:"):
			if m := analysisValue.FindStringSubmatch(line); m != nil {
				current.WordCards = Segment(m[1])
			}
		}
	}

	if current != nil && current.Valid() {
		examples = append(examples, *current)
	}
	return examples
}
