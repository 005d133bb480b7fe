// Package tui は単語入力と文の組み立て練習を行う Bubble Tea の画面です。
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jindam_vocab/internal/client"
	"jindam_vocab/internal/game"
	"jindam_vocab/internal/model"
)

type phase int

const (
	phaseInput phase = iota
	phaseLoading
	phaseGame
)

const requestTimeout = 30 * time.Second

type healthMsg struct{ err error }

type submitMsg struct {
	result *client.Result
	err    error
}

type saveMsg struct {
	entry *model.VocabularyEntry
	err   error
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	connectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	offlineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	infoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	koreanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cardStyle      = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	cursorCard     = cardStyle.BorderForeground(lipgloss.Color("#C89A3A"))
	usedCard       = cardStyle.Foreground(lipgloss.Color("#595959")).BorderForeground(lipgloss.Color("#434343"))
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model は Bubble Tea の tea.Model 実装
type Model struct {
	session  *client.Session
	shuffler game.Shuffler
	input    textinput.Model

	phase     phase
	connected bool
	status    string
	errMsg    string

	result  *client.Result
	rounds  []*game.Round
	current int
	cursor  int

	width int
}

// NewModel は画面を作ります。shuffler が nil ならランダム
func NewModel(session *client.Session, shuffler game.Shuffler) *Model {
	if shuffler == nil {
		shuffler = game.NewShuffler()
	}
	ti := textinput.New()
	ti.Placeholder = "중국어 단어 (예: 学习)"
	ti.CharLimit = 32
	ti.Focus()

	return &Model{
		session:  session,
		shuffler: shuffler,
		input:    ti,
		status:   "서버 연결 확인 중...",
	}
}

// Init は起動時のヘルスチェックを行います
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.checkHealth())
}

func (m *Model) checkHealth() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := session.CheckHealth(ctx)
		return healthMsg{err: err}
	}
}

func (m *Model) submit(word string) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res, err := session.Submit(ctx, word)
		return submitMsg{result: res, err: err}
	}
}

func (m *Model) save() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		entry, err := session.Save(ctx)
		return saveMsg{entry: entry, err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case healthMsg:
		m.connected = msg.err == nil
		if m.connected {
			m.status = "서버 연결됨 ✓"
			m.errMsg = ""
		} else {
			m.status = "서버 연결 안됨 ✗"
			m.errMsg = client.MessageDisconnected
		}
		return m, nil
	case submitMsg:
		return m.handleSubmit(msg)
	case saveMsg:
		if msg.err != nil {
			m.errMsg = client.UserMessage(msg.err)
			m.connected = m.session.Connected()
			return m, nil
		}
		m.status = fmt.Sprintf("단어가 저장되었습니다! (%s)", msg.entry.Word)
		m.session.Clear()
		m.backToInput()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.phase == phaseGame {
			return m.updateGame(msg)
		}
		return m.updateInput(msg)
	}
	return m, nil
}

func (m *Model) handleSubmit(msg submitMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, client.ErrStaleResponse) {
		return m, nil
	}
	if msg.err != nil {
		m.phase = phaseInput
		m.errMsg = client.UserMessage(msg.err)
		m.connected = m.session.Connected()
		if !m.connected {
			m.status = "서버 연결 안됨 ✗"
		}
		return m, nil
	}

	m.result = msg.result
	m.rounds = make([]*game.Round, len(msg.result.Examples))
	for i, ex := range msg.result.Examples {
		m.rounds[i] = game.NewRound(ex, m.shuffler)
	}
	m.current = 0
	m.cursor = 0
	m.errMsg = ""
	m.phase = phaseGame
	m.input.Blur()
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyCtrlR:
		m.status = "서버 연결 확인 중..."
		return m, m.checkHealth()
	case tea.KeyEnter:
		if m.phase == phaseLoading {
			return m, nil
		}
		word := strings.TrimSpace(m.input.Value())
		if word == "" {
			m.errMsg = client.MessageEmptyWord
			return m, nil
		}
		if !m.connected {
			m.errMsg = client.MessageDisconnected
			return m, nil
		}
		m.phase = phaseLoading
		m.errMsg = ""
		return m, m.submit(word)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	round := m.rounds[m.current]
	cards := round.Presentation()

	switch msg.Type {
	case tea.KeyEsc:
		m.backToInput()
		return m, nil
	case tea.KeyLeft:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyRight:
		if m.cursor < len(cards)-1 {
			m.cursor++
		}
	case tea.KeyEnter, tea.KeySpace:
		round.SelectCard(m.cursor)
		m.advanceCursor(round)
	case tea.KeyBackspace, tea.KeyDelete:
		round.RemoveLast()
	case tea.KeyTab:
		m.moveExample(1)
	case tea.KeyShiftTab:
		m.moveExample(-1)
	case tea.KeyRunes:
		return m.handleGameRune(round, msg.Runes)
	}
	return m, nil
}

func (m *Model) handleGameRune(round *game.Round, runes []rune) (tea.Model, tea.Cmd) {
	if len(runes) != 1 {
		return m, nil
	}
	switch r := runes[0]; {
	case r >= '1' && r <= '9':
		round.SelectCard(int(r - '1'))
	case r == 'c':
		if round.Check() {
			m.errMsg = ""
		} else {
			m.errMsg = "틀렸습니다. 다시 시도해보세요."
		}
	case r == 'r':
		round.Reset()
		m.cursor = 0
		m.errMsg = ""
	case r == 's':
		return m, m.save()
	}
	return m, nil
}

// advanceCursor はカーソルを次の未使用カードへ移します
func (m *Model) advanceCursor(round *game.Round) {
	n := len(round.Presentation())
	for i := 1; i <= n; i++ {
		next := (m.cursor + i) % n
		if !round.IsUsed(next) {
			m.cursor = next
			return
		}
	}
}

func (m *Model) moveExample(delta int) {
	if len(m.rounds) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.rounds)) % len(m.rounds)
	m.cursor = 0
	m.errMsg = ""
}

func (m *Model) backToInput() {
	m.phase = phaseInput
	m.rounds = nil
	m.result = nil
	m.errMsg = ""
	m.input.SetValue("")
	m.input.Focus()
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	status := offlineStyle.Render(m.status)
	if m.connected {
		status = connectedStyle.Render(m.status)
	}
	b.WriteString(titleStyle.Render("진담 중국어 단어장") + "  " + status + "\n\n")

	switch m.phase {
	case phaseInput:
		b.WriteString(m.input.View() + "\n")
	case phaseLoading:
		b.WriteString(infoStyle.Render("예문을 생성하는 중...") + "\n")
	case phaseGame:
		b.WriteString(m.renderGame())
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + footerStyle.Render(m.help()))
	return b.String()
}

func (m *Model) renderGame() string {
	var b strings.Builder
	round := m.rounds[m.current]
	ex := round.Example()

	fmt.Fprintf(&b, "%s  %s  %s\n", titleStyle.Render(m.result.Word), m.result.Info.Pinyin, m.result.Info.Meaning)
	fmt.Fprintf(&b, "%s\n\n", infoStyle.Render(fmt.Sprintf("예문 %d / %d", m.current+1, len(m.rounds))))
	b.WriteString(koreanStyle.Render(ex.Korean) + "\n\n")
	b.WriteString("> " + round.AssembledText() + "\n\n")

	cards := round.Presentation()
	rendered := make([]string, len(cards))
	for i, card := range cards {
		label := fmt.Sprintf("%d %s", i+1, card.Word)
		style := cardStyle
		switch {
		case round.IsUsed(i):
			style = usedCard
		case i == m.cursor && !round.Revealed():
			style = cursorCard
		}
		rendered[i] = style.Render(label)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n")

	if round.Revealed() {
		b.WriteString("\n" + correctStyle.Render("정답! "+ex.Chinese) + "\n")
		b.WriteString(infoStyle.Render(SentencePinyin(ex)) + "\n")
	}
	return b.String()
}

func (m *Model) help() string {
	switch m.phase {
	case phaseGame:
		return "←/→ 이동 · enter 선택 · backspace 취소 · c 확인 · r 다시 · tab 다음 예문 · s 저장 · esc 돌아가기"
	default:
		return "enter 예문 생성 · ctrl+r 서버 확인 · esc 종료"
	}
}

// SentencePinyin は単語カードのピンインを空白で繋いだ文全体のピンイン
func SentencePinyin(ex model.Example) string {
	parts := make([]string, 0, len(ex.WordCards))
	for _, card := range ex.WordCards {
		if card.Pinyin != "" {
			parts = append(parts, card.Pinyin)
		}
	}
	return strings.Join(parts, " ")
}
