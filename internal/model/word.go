// internal/model/word.go
package model

// WordInfo は単語の병음(ピンイン)と意味です。解析に失敗した場合は両方とも空文字列
type WordInfo struct {
	Pinyin  string `json:"pinyin"`
	Meaning string `json:"meaning"`
}

// WordCard は文の組み立てに使う単語カード。Pinyin は空の場合がある
type WordCard struct {
	Word   string `json:"word"`
	Pinyin string `json:"pinyin"`
}

// Example は生成された例文1件
// WordCards の順序は元の文の順序 (表示用のシャッフルは game パッケージ側で行う)
type Example struct {
	Chinese   string     `json:"chinese" validate:"required"`
	Korean    string     `json:"korean" validate:"required"`
	WordCards []WordCard `json:"wordCards"`
}

// Valid は保存可能な例文かどうかを返します
func (e Example) Valid() bool {
	return e.Chinese != "" && e.Korean != ""
}

// 単語情報リクエストDTO
type WordInfoRequest struct {
	Word string `json:"word" validate:"required"`
}

// 例文生成リクエストDTO
type GenerateExamplesRequest struct {
	Word    string `json:"word" validate:"required"`
	Pinyin  string `json:"pinyin"`
	Meaning string `json:"meaning"`
}
