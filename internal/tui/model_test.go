package tui

import (
	"context"
	"errors"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jindam_vocab/internal/client"
	"jindam_vocab/internal/model"
)

type stubAPI struct {
	healthErr  error
	examples   []model.Example
	examplesFn func() ([]model.Example, error)
	saved      []model.SaveWordRequest
}

func (s *stubAPI) Health(context.Context) (*model.HealthResponse, error) {
	if s.healthErr != nil {
		return nil, s.healthErr
	}
	return &model.HealthResponse{Status: "ok"}, nil
}

func (s *stubAPI) WordInfo(context.Context, string) (model.WordInfo, error) {
	return model.WordInfo{Pinyin: "péng you", Meaning: "친구"}, nil
}

func (s *stubAPI) GenerateExamples(context.Context, model.GenerateExamplesRequest) ([]model.Example, error) {
	if s.examplesFn != nil {
		return s.examplesFn()
	}
	return s.examples, nil
}

func (s *stubAPI) SaveWord(_ context.Context, req model.SaveWordRequest) (*model.VocabularyEntry, error) {
	s.saved = append(s.saved, req)
	return &model.VocabularyEntry{ID: "id-1", Word: req.Word}, nil
}

// identityShuffler は並べ替えない
type identityShuffler struct{}

func (identityShuffler) Shuffle(cards []model.WordCard) []model.WordCard {
	return append([]model.WordCard(nil), cards...)
}

var sample = model.Example{
	Chinese: "我有朋友。",
	Korean:  "나는 친구가 있다.",
	WordCards: []model.WordCard{
		{Word: "我", Pinyin: "wǒ"},
		{Word: "有", Pinyin: "yǒu"},
		{Word: "朋友", Pinyin: "péng you"},
	},
}

func newTestModel(t *testing.T, api *stubAPI) *Model {
	t.Helper()
	m := NewModel(client.NewSession(api, nil), identityShuffler{})
	m.Update(m.checkHealth()())
	return m
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runeKey(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

// submitWord は単語を入力して送信し、結果のメッセージまで処理します
func submitWord(t *testing.T, m *Model, word string) {
	t.Helper()
	m.input.SetValue(word)
	_, cmd := m.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, phaseLoading, m.phase)
	m.Update(cmd())
}

func TestModel_HealthStatus(t *testing.T) {
	m := newTestModel(t, &stubAPI{healthErr: &model.ConnectivityError{Op: "GET /api/health", Err: errors.New("refused")}})

	assert.False(t, m.connected)
	assert.Equal(t, client.MessageDisconnected, m.errMsg)

	m.input.SetValue("朋友")
	_, cmd := m.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd, "切断中は送信しない")
	assert.Equal(t, phaseInput, m.phase)
	assert.Contains(t, m.View(), "서버 연결 안됨")
}

func TestModel_EmptyWord(t *testing.T) {
	m := newTestModel(t, &stubAPI{examples: []model.Example{sample}})

	_, cmd := m.Update(key(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, client.MessageEmptyWord, m.errMsg)
}

func TestModel_AssembleAndCheck(t *testing.T) {
	m := newTestModel(t, &stubAPI{examples: []model.Example{sample}})
	submitWord(t, m, "朋友")

	require.Equal(t, phaseGame, m.phase)
	require.Len(t, m.rounds, 1)
	assert.Contains(t, m.View(), "나는 친구가 있다.")

	// 間違った順序
	m.Update(runeKey('2'))
	m.Update(runeKey('1'))
	m.Update(runeKey('3'))
	m.Update(runeKey('c'))
	assert.False(t, m.rounds[0].Revealed())
	assert.NotEmpty(t, m.errMsg)

	// 取り消してやり直す
	m.Update(runeKey('r'))
	assert.Empty(t, m.rounds[0].Assembled())

	m.Update(key(tea.KeyEnter)) // カーソル位置 (0) を選択し、次の未使用へ
	m.Update(key(tea.KeyEnter))
	m.Update(key(tea.KeyEnter))
	assert.Equal(t, "我有朋友", m.rounds[0].AssembledText())

	m.Update(runeKey('c'))
	assert.True(t, m.rounds[0].Correct())
	view := m.View()
	assert.Contains(t, view, "정답! 我有朋友。")
	assert.Contains(t, view, "wǒ yǒu péng you")
}

func TestModel_RemoveLast(t *testing.T) {
	m := newTestModel(t, &stubAPI{examples: []model.Example{sample}})
	submitWord(t, m, "朋友")

	m.Update(runeKey('1'))
	m.Update(runeKey('2'))
	m.Update(key(tea.KeyBackspace))

	assert.Equal(t, []string{"我"}, m.rounds[0].Assembled())
	assert.False(t, m.rounds[0].IsUsed(1))
}

func TestModel_ExampleNavigation(t *testing.T) {
	second := model.Example{Chinese: "朋友很重要。", Korean: "친구는 매우 중요합니다.", WordCards: []model.WordCard{{Word: "朋友"}, {Word: "很"}, {Word: "重要"}}}
	m := newTestModel(t, &stubAPI{examples: []model.Example{sample, second}})
	submitWord(t, m, "朋友")

	m.Update(key(tea.KeyTab))
	assert.Equal(t, 1, m.current)
	m.Update(key(tea.KeyTab))
	assert.Equal(t, 0, m.current, "最後の次は最初に戻る")
	m.Update(key(tea.KeyShiftTab))
	assert.Equal(t, 1, m.current)
}

func TestModel_Save(t *testing.T) {
	api := &stubAPI{examples: []model.Example{sample}}
	m := newTestModel(t, api)
	submitWord(t, m, "朋友")

	_, cmd := m.Update(runeKey('s'))
	require.NotNil(t, cmd)
	m.Update(cmd())

	require.Len(t, api.saved, 1)
	assert.Equal(t, "朋友", api.saved[0].Word)
	assert.Equal(t, phaseInput, m.phase)
	assert.Contains(t, m.status, "저장되었습니다")
	assert.Empty(t, m.input.Value())
}

func TestModel_SubmitErrors(t *testing.T) {
	t.Run("クォータ超過", func(t *testing.T) {
		m := newTestModel(t, &stubAPI{examplesFn: func() ([]model.Example, error) {
			return nil, &model.UpstreamError{StatusCode: http.StatusTooManyRequests, Message: model.QuotaExceededMessage}
		}})
		submitWord(t, m, "朋友")

		assert.Equal(t, phaseInput, m.phase)
		assert.Equal(t, client.MessageQuota, m.errMsg)
		assert.True(t, m.connected)
	})

	t.Run("通信エラー", func(t *testing.T) {
		m := newTestModel(t, &stubAPI{examplesFn: func() ([]model.Example, error) {
			return nil, &model.ConnectivityError{Op: "POST", Err: context.DeadlineExceeded}
		}})
		submitWord(t, m, "朋友")

		assert.Equal(t, client.MessageDisconnected, m.errMsg)
		assert.False(t, m.connected)
	})

	t.Run("古い応答は無視", func(t *testing.T) {
		m := newTestModel(t, &stubAPI{examples: []model.Example{sample}})
		m.phase = phaseLoading

		m.Update(submitMsg{err: client.ErrStaleResponse})

		assert.Equal(t, phaseLoading, m.phase)
		assert.Empty(t, m.errMsg)
	})

	t.Run("読み込み中の Enter は再送信しない", func(t *testing.T) {
		m := newTestModel(t, &stubAPI{examples: []model.Example{sample}})
		m.input.SetValue("朋友")
		_, cmd := m.Update(key(tea.KeyEnter))
		require.NotNil(t, cmd)

		_, again := m.Update(key(tea.KeyEnter))

		assert.Nil(t, again)
		assert.Equal(t, phaseLoading, m.phase)
	})
}

func TestSentencePinyin(t *testing.T) {
	ex := model.Example{WordCards: []model.WordCard{{Word: "我", Pinyin: "wǒ"}, {Word: "X"}, {Word: "好", Pinyin: "hǎo"}}}
	assert.Equal(t, "wǒ hǎo", SentencePinyin(ex))
}
