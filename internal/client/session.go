package client

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"jindam_vocab/internal/lexicon"
	"jindam_vocab/internal/model"
)

var (
	ErrEmptyWord     = errors.New("empty word")
	ErrDisconnected  = errors.New("backend not connected")
	ErrNoExamples    = errors.New("no examples generated")
	ErrNothingToSave = errors.New("nothing to save")
	// ErrStaleResponse は後から始まった送信に追い越された応答
	ErrStaleResponse = errors.New("stale response")
)

// API は Session が使うバックエンド呼び出し
type API interface {
	Health(ctx context.Context) (*model.HealthResponse, error)
	WordInfo(ctx context.Context, word string) (model.WordInfo, error)
	GenerateExamples(ctx context.Context, req model.GenerateExamplesRequest) ([]model.Example, error)
	SaveWord(ctx context.Context, req model.SaveWordRequest) (*model.VocabularyEntry, error)
}

// Result は1回の送信で得られた単語と例文
type Result struct {
	Word       string
	Info       model.WordInfo
	Examples   []model.Example
	Generation uint64
}

// Session は表示中の単語と例文を持つ。送信ごとに世代番号を進め、
// 最新の世代の応答だけが current を更新します
type Session struct {
	api API
	log *slog.Logger

	mu         sync.Mutex
	generation uint64
	connected  bool
	current    *Result
}

func NewSession(api API, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{api: api, log: logger.With("component", "session")}
}

// CheckHealth はヘルスチェックを行い接続状態を更新します
func (s *Session) CheckHealth(ctx context.Context) (*model.HealthResponse, error) {
	resp, err := s.api.Health(ctx)

	s.mu.Lock()
	s.connected = err == nil
	s.mu.Unlock()

	if err != nil {
		s.log.WarnContext(ctx, "health check failed", slog.String("error", err.Error()))
		return nil, err
	}
	return resp, nil
}

func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Current は最後に成功した送信の結果。まだ無ければ nil
func (s *Session) Current() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Session) nextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// noteError は通信エラーなら切断状態にします
func (s *Session) noteError(err error) {
	if IsConnectivity(err) {
		s.mu.Lock()
		s.connected = false
		s.mu.Unlock()
	}
}

// Submit は単語情報を取得してから例文を生成します。
// 接続されていない場合は何も呼ばずに ErrDisconnected を返します。
// 単語情報の取得失敗 (通信エラー以外) は空の情報で続行します
func (s *Session) Submit(ctx context.Context, word string) (*Result, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, ErrEmptyWord
	}
	if !s.Connected() {
		return nil, ErrDisconnected
	}

	gen := s.nextGeneration()
	logger := s.log.With(slog.String("word", word), slog.Uint64("generation", gen))

	info, ok := lexicon.Lookup(word)
	if !ok {
		var err error
		info, err = s.api.WordInfo(ctx, word)
		if err != nil {
			if IsConnectivity(err) {
				return s.settle(ctx, logger, gen, nil, err)
			}
			logger.WarnContext(ctx, "word info failed, continuing with blank info", slog.String("error", err.Error()))
			info = model.WordInfo{}
		}
	}

	examples, err := s.api.GenerateExamples(ctx, model.GenerateExamplesRequest{
		Word:    word,
		Pinyin:  info.Pinyin,
		Meaning: info.Meaning,
	})
	if err != nil {
		return s.settle(ctx, logger, gen, nil, err)
	}
	if len(examples) == 0 {
		return s.settle(ctx, logger, gen, nil, ErrNoExamples)
	}

	return s.settle(ctx, logger, gen, &Result{Word: word, Info: info, Examples: examples, Generation: gen}, nil)
}

// settle は gen が最新の送信である場合だけ結果 (またはエラー) をセッションに反映します。
// 古い送信は成否にかかわらず ErrStaleResponse になり、接続状態も変えません
func (s *Session) settle(ctx context.Context, logger *slog.Logger, gen uint64, result *Result, err error) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		logger.DebugContext(ctx, "dropping stale response", slog.Uint64("latest", s.generation), slog.Bool("failed", err != nil))
		return nil, ErrStaleResponse
	}
	if err != nil {
		if IsConnectivity(err) {
			s.connected = false
		}
		return nil, err
	}
	s.current = result
	return result, nil
}

// Save は表示中の単語を単語帳に保存します。
// 中国語と韓国語が揃った例文だけを送り、単語とそのような例文が1件以上必要
func (s *Session) Save(ctx context.Context) (*model.VocabularyEntry, error) {
	current := s.Current()
	if current == nil || current.Word == "" {
		return nil, ErrNothingToSave
	}
	examples := make([]model.Example, 0, len(current.Examples))
	for _, ex := range current.Examples {
		if ex.Valid() {
			examples = append(examples, ex)
		}
	}
	if len(examples) == 0 {
		return nil, ErrNothingToSave
	}

	entry, err := s.api.SaveWord(ctx, model.SaveWordRequest{
		Word:     current.Word,
		Pinyin:   current.Info.Pinyin,
		Meaning:  current.Info.Meaning,
		Examples: examples,
	})
	if err != nil {
		s.noteError(err)
		return nil, err
	}
	return entry, nil
}

// Clear は表示中の単語を破棄します (保存後のフォーム初期化)
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
