package game

import (
	"testing"

	"jindam_vocab/internal/extractor"
	"jindam_vocab/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identity は並べ替えない Shuffler (テスト用)
type identity struct{}

func (identity) Shuffle(cards []model.WordCard) []model.WordCard {
	out := make([]model.WordCard, len(cards))
	copy(out, cards)
	return out
}

func sampleExample() model.Example {
	return model.Example{
		Chinese: "我喜欢学习。",
		Korean:  "저는 공부를 좋아합니다.",
		WordCards: []model.WordCard{
			{Word: "我", Pinyin: "wǒ"},
			{Word: "喜欢", Pinyin: "xǐhuān"},
			{Word: "学习", Pinyin: "xuéxí"},
		},
	}
}

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		name      string
		chinese   string
		assembled []string
		want      bool
	}{
		{"正常系: 句点を除いて一致", "我喜欢学习。", []string{"我", "喜欢", "学习"}, true},
		{"正常系: 分割が違っても文字列が一致", "我喜欢学习。", []string{"我喜", "欢学习"}, true},
		{"正常系: 半角記号と全角記号", "你好, 世界!？", []string{"你好 世界"}, true},
		{"異常系: 語順違い", "我喜欢学习。", []string{"喜欢", "我", "学习"}, false},
		{"異常系: 途中まで", "我喜欢学习。", []string{"我"}, false},
		{"異常系: 空", "我喜欢学习。", nil, false},
		{"正常系: 例文が記号だけなら空でも一致", "。！", nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsCorrect(tc.chinese, tc.assembled))
		})
	}
}

func TestRound_RoundTrip(t *testing.T) {
	ex := sampleExample()
	r := NewRound(ex, identity{})

	for i := range r.Presentation() {
		require.True(t, r.SelectCard(i))
	}
	assert.True(t, r.Check())
	assert.True(t, r.Revealed())
	assert.True(t, r.Correct())
}

func TestRound_CheckIsIdempotent(t *testing.T) {
	r := NewRound(sampleExample(), identity{})
	r.SelectCard(1)
	r.SelectCard(0)

	first := r.Check()
	second := r.Check()
	assert.False(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"喜欢", "我"}, r.Assembled(), "不正解でも状態は変わらない")
	assert.False(t, r.Revealed())

	r.Reset()
	for i := range r.Presentation() {
		r.SelectCard(i)
	}
	assert.True(t, r.Check())
	assert.True(t, r.Check())
}

func TestRound_SelectCard(t *testing.T) {
	r := NewRound(sampleExample(), identity{})

	assert.True(t, r.SelectCard(0))
	assert.False(t, r.SelectCard(0), "使用済みは何もしない")
	assert.False(t, r.SelectCard(-1))
	assert.False(t, r.SelectCard(3))
	assert.Equal(t, []string{"我"}, r.Assembled())
	assert.True(t, r.IsUsed(0))
	assert.False(t, r.IsUsed(1))
}

func TestRound_RemoveLast(t *testing.T) {
	r := NewRound(sampleExample(), identity{})
	assert.False(t, r.RemoveLast())

	r.SelectCard(2)
	r.SelectCard(0)
	require.True(t, r.RemoveLast())
	assert.Equal(t, []string{"学习"}, r.Assembled())
	assert.False(t, r.IsUsed(0))
	assert.True(t, r.SelectCard(0), "取り消したカードは再選択できる")
}

func TestRound_LockedAfterReveal(t *testing.T) {
	r := NewRound(sampleExample(), identity{})
	for i := range r.Presentation() {
		r.SelectCard(i)
	}
	require.True(t, r.Check())

	assert.False(t, r.RemoveLast())
	assert.Len(t, r.Assembled(), 3)
}

func TestRound_Reset(t *testing.T) {
	r := NewRound(sampleExample(), NewSeededShuffler(7))
	before := r.Presentation()

	for i := range before {
		r.SelectCard(i)
	}
	r.Check()
	r.Reset()

	assert.Empty(t, r.Assembled())
	assert.False(t, r.Revealed())
	assert.False(t, r.Correct())
	assert.False(t, r.IsUsed(0))
	assert.Equal(t, before, r.Presentation(), "提示順は変えない")
	assert.False(t, r.Check(), "空のまま判定すると不正解")
}

func TestRound_ResetWithPunctuationOnlySentence(t *testing.T) {
	r := NewRound(model.Example{Chinese: "。", Korean: "."}, identity{})
	r.Reset()
	assert.True(t, r.Check())
}

func TestNewRound_DoesNotMutateCanonicalOrder(t *testing.T) {
	ex := sampleExample()
	canonical := append([]model.WordCard(nil), ex.WordCards...)

	r := NewRound(ex, NewSeededShuffler(42))

	assert.Equal(t, canonical, ex.WordCards)
	assert.Equal(t, canonical, r.Example().WordCards)
	assert.ElementsMatch(t, canonical, r.Presentation())
}

func TestSeededShuffler_Deterministic(t *testing.T) {
	cards := make([]model.WordCard, 10)
	for i := range cards {
		cards[i] = model.WordCard{Word: string(rune('a' + i))}
	}

	a := NewSeededShuffler(99).Shuffle(cards)
	b := NewSeededShuffler(99).Shuffle(cards)
	assert.Equal(t, a, b)
	assert.ElementsMatch(t, cards, a)
	assert.Equal(t, "a", cards[0].Word)
}

func TestEndToEnd_ExtractThenCheck(t *testing.T) {
	text := "1. 중국어 예문: 我喜欢学习。\n한국어 번역: 저는 공부를 좋아합니다.\n단어 분석: 我,wǒ, 喜欢,xǐhuān, 学习,xuéxí"
	examples := extractor.ExtractExamples(text)
	require.Len(t, examples, 1)

	r := NewRound(examples[0], NewSeededShuffler(3))
	for _, word := range []string{"我", "喜欢", "学习"} {
		for i, card := range r.Presentation() {
			if card.Word == word {
				require.True(t, r.SelectCard(i))
				break
			}
		}
	}
	assert.True(t, r.Check())
}
