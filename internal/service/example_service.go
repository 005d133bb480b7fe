//go:generate mockery --name ExampleService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"

	"jindam_vocab/internal/lexicon"
	"jindam_vocab/internal/model"
	"jindam_vocab/internal/translate"
)

// exampleTemplate は中国語の例文と、翻訳に失敗したときの韓国語訳の組
type exampleTemplate struct {
	chinese func(word string) string
	korean  func(meaning string) string
}

var exampleTemplates = []exampleTemplate{
	{
		chinese: func(w string) string { return "我喜欢" + w + "。" },
		korean:  func(m string) string { return "저는 " + m + "을(를) 좋아합니다." },
	},
	{
		chinese: func(w string) string { return "他在" + w + "。" },
		korean:  func(m string) string { return "그는 " + m + "하고 있습니다." },
	},
	{
		chinese: func(w string) string { return w + "很重要。" },
		korean:  func(m string) string { return m + "은(는) 매우 중요합니다." },
	},
	{
		chinese: func(w string) string { return "昨天我们" + w + "了。" },
		korean:  func(m string) string { return "어제 우리는 " + m + "했습니다." },
	},
	{
		chinese: func(w string) string { return "这个" + w + "很好。" },
		korean:  func(m string) string { return "이 " + m + "은(는) 매우 좋습니다." },
	},
	{
		chinese: func(w string) string { return "我们需要" + w + "。" },
		korean:  func(m string) string { return "우리는 " + m + "이(가) 필요합니다." },
	},
	{
		chinese: func(w string) string { return w + "对我们很有用。" },
		korean:  func(m string) string { return m + "은(는) 우리에게 매우 유용합니다." },
	},
	{
		chinese: func(w string) string { return "学习" + w + "很重要。" },
		korean:  func(m string) string { return m + "을(를) 배우는 것은 매우 중요합니다." },
	},
}

type ExampleService interface {
	GenerateExamples(ctx context.Context, req *model.GenerateExamplesRequest) (*model.ProviderResponse, error)
}

type exampleService struct {
	translator translate.Translator
	logger     *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewExampleService は例文生成サービスを作ります。rng が nil の場合はランダムに初期化
func NewExampleService(translator translate.Translator, rng *rand.Rand, logger *slog.Logger) ExampleService {
	if translator == nil {
		translator = translate.NopTranslator{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &exampleService{translator: translator, rng: rng, logger: logger}
}

func (s *exampleService) pick() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(len(exampleTemplates))
}

// GenerateExamples はテンプレートから例文を1件作り、翻訳と単語分析を付けて返します。
// 翻訳に失敗した場合は韓国語テンプレートで代用しますが、クォータ超過はそのまま返します
func (s *exampleService) GenerateExamples(ctx context.Context, req *model.GenerateExamplesRequest) (*model.ProviderResponse, error) {
	word := strings.TrimSpace(req.Word)
	if word == "" {
		return nil, model.ErrInvalidInput
	}
	logger := s.logger.With(slog.String("word", word))

	tmpl := exampleTemplates[s.pick()]
	chinese := tmpl.chinese(word)

	korean, err := s.translator.Translate(ctx, chinese)
	if err != nil {
		if errors.Is(err, model.ErrUpstreamQuota) {
			logger.WarnContext(ctx, "Translation quota exhausted", slog.Any("error", err))
			return nil, err
		}
		if !errors.Is(err, translate.ErrTranslatorUnavailable) {
			logger.WarnContext(ctx, "Translation failed, using template", slog.Any("error", err))
		}
		korean = tmpl.korean(meaningFor(word, req.Meaning))
	}

	analysis := lexicon.BuildAnalysis(chinese, word, strings.TrimSpace(req.Pinyin))
	text := fmt.Sprintf("1. 중국어 예문: %s\n한국어 번역: %s\n단어 분석: %s", chinese, korean, analysis)

	logger.DebugContext(ctx, "Example generated", slog.String("chinese", chinese))
	return model.NewTextResponse(text), nil
}

// meaningFor はリクエストの意味が空のとき、単語表か単語そのもので補います
func meaningFor(word, meaning string) string {
	if m := strings.TrimSpace(meaning); m != "" {
		return m
	}
	if info, ok := lexicon.Lookup(word); ok {
		return info.Meaning
	}
	return word
}
