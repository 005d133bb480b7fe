// Package lexicon は固定の単語表 (병음/의미) と、
// 例文から "単語,병음, ..." 形式の分析文字列を組み立てる処理を持ちます。
package lexicon

import (
	"strings"

	"jindam_vocab/internal/model"
)

const (
	UnknownPinyin  = "(병음 정보 없음)"
	UnknownMeaning = "(의미 정보 없음)"
)

// commonWords はよく使う単語。単語情報の即答と失敗時のフォールバックに使う
var commonWords = map[string]model.WordInfo{
	"吃":  {Pinyin: "chī", Meaning: "먹다"},
	"好":  {Pinyin: "hǎo", Meaning: "좋다"},
	"学":  {Pinyin: "xué", Meaning: "배우다"},
	"说":  {Pinyin: "shuō", Meaning: "말하다"},
	"是":  {Pinyin: "shì", Meaning: "~이다"},
	"去":  {Pinyin: "qù", Meaning: "가다"},
	"来":  {Pinyin: "lái", Meaning: "오다"},
	"吃饭": {Pinyin: "chī fàn", Meaning: "밥을 먹다"},
	"学习": {Pinyin: "xué xí", Meaning: "공부하다"},
	"工作": {Pinyin: "gōng zuò", Meaning: "일하다"},
	"睡觉": {Pinyin: "shuì jiào", Meaning: "잠을 자다"},
}

// pinyinTable は例文テンプレートに出てくる字と語の병음
var pinyinTable = map[string]string{
	"我": "wǒ", "你": "nǐ", "他": "tā", "她": "tā", "们": "men",
	"喜": "xǐ", "欢": "huān", "在": "zài", "很": "hěn", "重": "zhòng",
	"要": "yào", "昨": "zuó", "天": "tiān", "了": "le", "这": "zhè",
	"个": "gè", "需": "xū", "对": "duì", "有": "yǒu", "用": "yòng",
	"习": "xí", "饭": "fàn", "工": "gōng", "作": "zuò", "睡": "shuì",
	"觉": "jiào", "不": "bù", "的": "de",
	"我们": "wǒ men", "喜欢": "xǐ huān", "重要": "zhòng yào", "昨天": "zuó tiān",
	"这个": "zhè ge", "需要": "xū yào", "有用": "yǒu yòng", "你好": "nǐ hǎo",
}

// Lookup は単語表から単語情報を探します
func Lookup(word string) (model.WordInfo, bool) {
	info, ok := commonWords[word]
	return info, ok
}

// Pinyin は単語の병음を返します。不明な場合は UnknownPinyin
func Pinyin(word string) string {
	if info, ok := commonWords[word]; ok {
		return info.Pinyin
	}
	if p, ok := pinyinTable[word]; ok {
		return p
	}
	return UnknownPinyin
}

// Meaning は単語の意味を返します。不明な場合は UnknownMeaning
func Meaning(word string) string {
	if info, ok := commonWords[word]; ok {
		return info.Meaning
	}
	return UnknownMeaning
}

func known(word string) (string, bool) {
	p := Pinyin(word)
	return p, p != "" && p != UnknownPinyin
}

func skipAnalysis(r rune) bool {
	return r == ' ' || strings.ContainsRune("，。！？、:;", r)
}

// BuildAnalysis は例文を1文字ずつ見て分析文字列を組み立てます。
// 対象の単語に一致する2文字、表にある2文字の語、1文字の順に試し、
// 表にない文字は "字,字" として出力します
func BuildAnalysis(sentence, word, pinyin string) string {
	chars := []rune(sentence)
	parts := make([]string, 0, len(chars))

	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if skipAnalysis(c) {
			continue
		}

		if i < len(chars)-1 {
			two := string(chars[i : i+2])
			if two == word {
				p := pinyin
				if p == "" {
					p = Pinyin(word)
				}
				parts = append(parts, word+","+p)
				i++
				continue
			}
			if p, ok := known(two); ok {
				parts = append(parts, two+","+p)
				i++
				continue
			}
		}

		s := string(c)
		if p, ok := known(s); ok {
			parts = append(parts, s+","+p)
		} else {
			parts = append(parts, s+","+s)
		}
	}
	return strings.Join(parts, ", ")
}
