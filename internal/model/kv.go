// internal/model/kv.go
package model

import "time"

// KVEntry は名前空間ごとのキーバリュー。単語帳は key=VocabularyKey に JSON 配列で保存する
type KVEntry struct {
	Namespace string    `gorm:"primaryKey;size:128"`
	Key       string    `gorm:"primaryKey;column:kv_key;size:128"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
