// Package game は例文1件ごとの並べ替えゲームの状態を管理します。
// 表示やDOMには依存せず、カードの選択と正誤判定だけを扱います。
package game

import (
	"strings"

	"jindam_vocab/internal/model"
)

// sentencePunctuation は正誤判定の前に例文から取り除く記号
var sentencePunctuation = strings.NewReplacer(
	".", "", ",", "", "?", "", "!", "", ";", "",
	"，", "", "。", "", "？", "", "！", "", "；", "",
)

// StripPunctuation は例文から句読点を取り除きます
func StripPunctuation(chinese string) string {
	return sentencePunctuation.Replace(chinese)
}

// IsCorrect は組み立てた単語列が例文と一致するかを返します
func IsCorrect(chinese string, assembled []string) bool {
	return strings.Join(assembled, "") == StripPunctuation(chinese)
}

// Round は例文1件分のゲーム状態
type Round struct {
	example      model.Example
	presentation []model.WordCard
	assembled    []string
	selected     []int // 選択した提示インデックス (選択順)
	used         map[int]bool
	revealed     bool
	correct      bool
}

// NewRound は提示順を一度だけシャッフルしてラウンドを作ります。
// example.WordCards の元の順序は変更しません
func NewRound(example model.Example, shuffler Shuffler) *Round {
	if shuffler == nil {
		shuffler = NewShuffler()
	}
	return &Round{
		example:      example,
		presentation: shuffler.Shuffle(example.WordCards),
		used:         make(map[int]bool),
	}
}

func (r *Round) Example() model.Example { return r.example }

// Presentation は提示順のカード (コピー)
func (r *Round) Presentation() []model.WordCard {
	out := make([]model.WordCard, len(r.presentation))
	copy(out, r.presentation)
	return out
}

// Assembled はこれまでに組み立てた単語列 (コピー)
func (r *Round) Assembled() []string {
	out := make([]string, len(r.assembled))
	copy(out, r.assembled)
	return out
}

func (r *Round) AssembledText() string { return strings.Join(r.assembled, "") }

func (r *Round) IsUsed(i int) bool { return r.used[i] }

func (r *Round) Revealed() bool { return r.revealed }

func (r *Round) Correct() bool { return r.correct }

// SelectCard は提示インデックス i のカードを末尾に追加します。
// 使用済み・範囲外・正解後の場合は何もせず false を返します
func (r *Round) SelectCard(i int) bool {
	if r.revealed || i < 0 || i >= len(r.presentation) || r.used[i] {
		return false
	}
	r.used[i] = true
	r.selected = append(r.selected, i)
	r.assembled = append(r.assembled, r.presentation[i].Word)
	return true
}

// RemoveLast は最後に選んだカードを取り消します
func (r *Round) RemoveLast() bool {
	if r.revealed || len(r.selected) == 0 {
		return false
	}
	last := r.selected[len(r.selected)-1]
	r.selected = r.selected[:len(r.selected)-1]
	r.assembled = r.assembled[:len(r.assembled)-1]
	delete(r.used, last)
	return true
}

// Check は組み立てた文を判定します。正解すると revealed/correct が立ち、
// Reset するまで戻りません。不正解の場合は状態を変更しません
func (r *Round) Check() bool {
	if r.correct {
		return true
	}
	if !IsCorrect(r.example.Chinese, r.assembled) {
		return false
	}
	r.revealed = true
	r.correct = true
	return true
}

// Reset は組み立て状態と判定結果を消します。提示順はそのまま
func (r *Round) Reset() {
	r.assembled = nil
	r.selected = nil
	r.used = make(map[int]bool)
	r.revealed = false
	r.correct = false
}
