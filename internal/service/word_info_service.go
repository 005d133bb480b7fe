//go:generate mockery --name WordInfoService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"jindam_vocab/internal/lexicon"
	"jindam_vocab/internal/model"
)

type WordInfoService interface {
	GetWordInfo(ctx context.Context, word string) (*model.ProviderResponse, error)
}

type wordInfoService struct {
	logger *slog.Logger
}

func NewWordInfoService(logger *slog.Logger) WordInfoService {
	if logger == nil {
		logger = slog.Default()
	}
	return &wordInfoService{logger: logger}
}

// GetWordInfo は単語表から "병음: ...\n의미: ..." 形式のレスポンスを作ります
func (s *wordInfoService) GetWordInfo(ctx context.Context, word string) (*model.ProviderResponse, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, model.ErrInvalidInput
	}

	_, known := lexicon.Lookup(word)
	s.logger.DebugContext(ctx, "Word info resolved", slog.String("word", word), slog.Bool("known", known))

	text := fmt.Sprintf("병음: %s\n의미: %s", lexicon.Pinyin(word), lexicon.Meaning(word))
	return model.NewTextResponse(text), nil
}
