// internal/model/vocabulary.go
package model

import "time"

// VocabularyKey は単語帳コレクションを保存するキー
const VocabularyKey = "jindam-words"

// VocabularyEntry は単語帳に保存された1件。作成後は削除以外で変更されない
type VocabularyEntry struct {
	ID       string    `json:"id"`
	Word     string    `json:"word"`
	Pinyin   string    `json:"pinyin"`
	Meaning  string    `json:"meaning"`
	Date     string    `json:"date"`
	Examples []Example `json:"examples"`

	// 旧スキーマのフィールド。date が無いレコードの補完元
	CreatedAt string `json:"createdAt,omitempty"`
}

// DateTime は Date を time.Time として返します。解析できない場合はゼロ値
func (e VocabularyEntry) DateTime() time.Time {
	t, err := time.Parse(time.RFC3339Nano, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// 単語保存リクエストDTO
type SaveWordRequest struct {
	Word     string    `json:"word" validate:"required,max=32"`
	Pinyin   string    `json:"pinyin" validate:"max=128"`
	Meaning  string    `json:"meaning" validate:"max=256"`
	Examples []Example `json:"examples" validate:"required,min=1,dive"`
}

// 単語帳一覧レスポンス
type VocabularyListResponse struct {
	Words []*VocabularyEntry `json:"words"`
	Count int                `json:"count"`
}

// 単語帳インポート結果
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}
