package extractor

import (
	"regexp"
	"strings"

	"jindam_vocab/internal/model"
)

var (
	analysisSeparator = regexp.MustCompile(`,\s*|，\s*`)
	// 漢字・ハングル・英数字のいずれかを含むか
	meaningfulChar = regexp.MustCompile(`[\x{4e00}-\x{9fff}\x{ac00}-\x{d7a3}a-zA-Z0-9]`)
)

// pinyinPunctuation はピンインから取り除く記号 (半角/全角)
var pinyinPunctuation = strings.NewReplacer(
	".", "", ",", "", "，", "", "。", "", "！", "", "!", "", "?", "", "？", "",
)

// CleanPinyin はピンインから句読点を取り除き前後の空白を削除します
func CleanPinyin(pinyin string) string {
	return strings.TrimSpace(pinyinPunctuation.Replace(pinyin))
}

// isNoise は記号だけで構成されたトークンかどうか
func isNoise(token string) bool {
	return !meaningfulChar.MatchString(token)
}

// Segment は "word,pinyin, word,pinyin" 形式の分析文字列を単語カードに分割します。
// 記号だけの単語はペアのピンインごと捨て、末尾に余った単語はピンインなしのカードになります
func Segment(analysis string) []model.WordCard {
	tokens := analysisSeparator.Split(strings.TrimSpace(analysis), -1)
	cards := make([]model.WordCard, 0, len(tokens)/2+1)

	for i := 0; i < len(tokens); i += 2 {
		word := strings.TrimSpace(tokens[i])
		if isNoise(word) {
			continue
		}
		pinyin := ""
		if i+1 < len(tokens) {
			pinyin = CleanPinyin(tokens[i+1])
		}
		cards = append(cards, model.WordCard{Word: word, Pinyin: pinyin})
	}
	return cards
}
