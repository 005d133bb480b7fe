package game

import (
	"math/rand/v2"

	"jindam_vocab/internal/model"
)

// Shuffler はカードの提示順を決めます
type Shuffler interface {
	Shuffle(cards []model.WordCard) []model.WordCard
}

type randShuffler struct {
	rng *rand.Rand
}

// NewSeededShuffler は同じ seed なら同じ順序を返す Shuffler を作ります
func NewSeededShuffler(seed uint64) Shuffler {
	return &randShuffler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewShuffler はランダムに初期化された Shuffler を作ります
func NewShuffler() Shuffler {
	return &randShuffler{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Shuffle は入力をコピーしてから並べ替えます。入力のスライスは変更しない
func (s *randShuffler) Shuffle(cards []model.WordCard) []model.WordCard {
	out := make([]model.WordCard, len(cards))
	copy(out, cards)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
