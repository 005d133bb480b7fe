//go:generate mockery --name VocabularyService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"jindam_vocab/internal/middleware"
	"jindam_vocab/internal/model"
	"jindam_vocab/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// isoLayout はブラウザの toISOString と同じ形式 (UTC, ミリ秒)
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

type VocabularyService interface {
	Save(ctx context.Context, namespace string, req *model.SaveWordRequest) (*model.VocabularyEntry, error)
	List(ctx context.Context, namespace, date string) ([]*model.VocabularyEntry, error)
	Get(ctx context.Context, namespace, id string) (*model.VocabularyEntry, error)
	Delete(ctx context.Context, namespace, id string) error
	Dates(ctx context.Context, namespace string) ([]string, error)
	Import(ctx context.Context, namespace string, legacy []byte) (*model.ImportResult, error)
}

type vocabularyService struct {
	db     *gorm.DB
	kvRepo repository.KVRepository
	key    string
	now    func() time.Time
	loc    *time.Location
	logger *slog.Logger
}

// VocabularyOption は単語帳サービスの任意設定
type VocabularyOption func(*vocabularyService)

// WithLocation は日付ごとの集計に使うタイムゾーンを指定します (デフォルト UTC)
func WithLocation(loc *time.Location) VocabularyOption {
	return func(s *vocabularyService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// NewVocabularyService は単語帳サービスを作ります。storeKey が空なら model.VocabularyKey
func NewVocabularyService(db *gorm.DB, kvRepo repository.KVRepository, storeKey string, logger *slog.Logger, opts ...VocabularyOption) VocabularyService {
	if storeKey == "" {
		storeKey = model.VocabularyKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &vocabularyService{
		db:     db,
		kvRepo: kvRepo,
		key:    storeKey,
		now:    time.Now,
		loc:    time.UTC,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *vocabularyService) timestamp() string {
	return s.now().UTC().Format(isoLayout)
}

// day は保存日時を s.loc の暦日 (YYYY-MM-DD) にします。解釈できない日付は先頭の日付部分を使う
func (s *vocabularyService) day(e *model.VocabularyEntry) string {
	if t := e.DateTime(); !t.IsZero() {
		return t.In(s.loc).Format(time.DateOnly)
	}
	day, _, _ := strings.Cut(e.Date, "T")
	return day
}

func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// normalize は旧スキーマのレコードを補完します。補完した場合は true
func (s *vocabularyService) normalize(e *model.VocabularyEntry) bool {
	changed := false
	if e.Date == "" {
		e.Date = e.CreatedAt
		if e.Date == "" {
			e.Date = s.timestamp()
		}
		changed = true
	}
	if e.ID == "" {
		e.ID = newEntryID()
		changed = true
	}
	if e.Examples == nil {
		e.Examples = []model.Example{}
	}
	return changed
}

func (s *vocabularyService) decode(value string) ([]*model.VocabularyEntry, bool, error) {
	entries := []*model.VocabularyEntry{}
	if strings.TrimSpace(value) != "" {
		if err := json.Unmarshal([]byte(value), &entries); err != nil {
			return nil, false, fmt.Errorf("vocabularyService.decode: %w: %v", model.ErrInternalServer, err)
		}
	}
	changed := false
	kept := entries[:0]
	for _, e := range entries {
		if e == nil {
			changed = true
			continue
		}
		if s.normalize(e) {
			changed = true
		}
		kept = append(kept, e)
	}
	return kept, changed, nil
}

// load はコレクションを読みます。補完が必要なレコードがあれば書き戻して ID を固定します
func (s *vocabularyService) load(ctx context.Context, namespace string) ([]*model.VocabularyEntry, error) {
	entry, err := s.kvRepo.Get(ctx, s.db, namespace, s.key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return []*model.VocabularyEntry{}, nil
		}
		return nil, err
	}
	entries, changed, err := s.decode(entry.Value)
	if err != nil {
		return nil, err
	}
	if !changed {
		return entries, nil
	}
	middleware.GetLogger(ctx).Info("Backfilling legacy vocabulary entries", slog.String("namespace", namespace))
	return s.mutate(ctx, namespace, func(entries []*model.VocabularyEntry) ([]*model.VocabularyEntry, error) {
		return entries, nil
	})
}

// mutate はトランザクション内でコレクションを読み直し、fn の結果を書き込みます。
// 初回作成が競合した場合は一度だけやり直します
func (s *vocabularyService) mutate(ctx context.Context, namespace string, fn func([]*model.VocabularyEntry) ([]*model.VocabularyEntry, error)) ([]*model.VocabularyEntry, error) {
	var result []*model.VocabularyEntry
	run := func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			stored, err := s.kvRepo.GetForUpdate(ctx, tx, namespace, s.key)
			exists := true
			if errors.Is(err, model.ErrNotFound) {
				exists = false
				stored = &model.KVEntry{Namespace: namespace, Key: s.key}
			} else if err != nil {
				return err
			}

			entries, _, err := s.decode(stored.Value)
			if err != nil {
				return err
			}
			updated, err := fn(entries)
			if err != nil {
				return err
			}
			if updated == nil {
				updated = []*model.VocabularyEntry{}
			}
			value, err := json.Marshal(updated)
			if err != nil {
				return fmt.Errorf("vocabularyService.mutate: %w", err)
			}
			stored.Value = string(value)

			if exists {
				err = s.kvRepo.Update(ctx, tx, stored)
			} else {
				err = s.kvRepo.Create(ctx, tx, stored)
			}
			if err != nil {
				return err
			}
			result = updated
			return nil
		})
	}

	err := run()
	if errors.Is(err, model.ErrConflict) {
		s.logger.WarnContext(ctx, "Vocabulary collection created concurrently, retrying", slog.String("namespace", namespace))
		err = run()
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *vocabularyService) Save(ctx context.Context, namespace string, req *model.SaveWordRequest) (*model.VocabularyEntry, error) {
	word := strings.TrimSpace(req.Word)
	if word == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "단어를 입력해주세요.", "word", model.ErrInvalidInput)
	}
	if len(req.Examples) == 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "저장할 예문이 없습니다.", "examples", model.ErrInvalidInput)
	}
	for _, ex := range req.Examples {
		if !ex.Valid() {
			return nil, model.NewAppError("VALIDATION_ERROR", "중국어 예문과 한국어 번역이 모두 필요합니다.", "examples", model.ErrInvalidInput)
		}
	}

	now := s.timestamp()
	created := &model.VocabularyEntry{
		ID:        newEntryID(),
		Word:      word,
		Pinyin:    req.Pinyin,
		Meaning:   req.Meaning,
		Date:      now,
		Examples:  req.Examples,
		CreatedAt: now,
	}

	_, err := s.mutate(ctx, namespace, func(entries []*model.VocabularyEntry) ([]*model.VocabularyEntry, error) {
		return append(entries, created), nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to save vocabulary entry", slog.Any("error", err), slog.String("namespace", namespace))
		return nil, err
	}
	return created, nil
}

// List は単語帳を新しい順に返します。date (YYYY-MM-DD) を指定するとその日の分だけ
func (s *vocabularyService) List(ctx context.Context, namespace, date string) ([]*model.VocabularyEntry, error) {
	if date != "" {
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			return nil, model.NewAppError("VALIDATION_ERROR", "날짜 형식이 올바르지 않습니다. (YYYY-MM-DD)", "date", model.ErrInvalidInput)
		}
	}

	entries, err := s.load(ctx, namespace)
	if err != nil {
		return nil, err
	}

	filtered := make([]*model.VocabularyEntry, 0, len(entries))
	for _, e := range entries {
		if date == "" || s.day(e) == date {
			filtered = append(filtered, e)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].DateTime().After(filtered[j].DateTime())
	})
	return filtered, nil
}

func (s *vocabularyService) Get(ctx context.Context, namespace, id string) (*model.VocabularyEntry, error) {
	entries, err := s.load(ctx, namespace)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, model.ErrNotFound
}

func (s *vocabularyService) Delete(ctx context.Context, namespace, id string) error {
	_, err := s.mutate(ctx, namespace, func(entries []*model.VocabularyEntry) ([]*model.VocabularyEntry, error) {
		kept := make([]*model.VocabularyEntry, 0, len(entries))
		for _, e := range entries {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		if len(kept) == len(entries) {
			return nil, model.ErrNotFound
		}
		return kept, nil
	})
	return err
}

// Dates は単語が保存された日付 (YYYY-MM-DD) を新しい順に返します
func (s *vocabularyService) Dates(ctx context.Context, namespace string) ([]string, error) {
	entries, err := s.load(ctx, namespace)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	dates := make([]string, 0)
	for _, e := range entries {
		day := s.day(e)
		if day == "" || seen[day] {
			continue
		}
		seen[day] = true
		dates = append(dates, day)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates, nil
}

// Import はブラウザに保存されていた旧形式の JSON 配列を取り込みます。
// 単語が空のもの、同じ ID が既にあるものはスキップします
func (s *vocabularyService) Import(ctx context.Context, namespace string, legacy []byte) (*model.ImportResult, error) {
	var incoming []*model.VocabularyEntry
	if err := json.Unmarshal(legacy, &incoming); err != nil {
		return nil, model.NewAppError("INVALID_REQUEST_BODY", "가져올 데이터는 단어 배열(JSON)이어야 합니다.", "", model.ErrInvalidInput)
	}

	result := &model.ImportResult{Total: len(incoming)}
	_, err := s.mutate(ctx, namespace, func(entries []*model.VocabularyEntry) ([]*model.VocabularyEntry, error) {
		result.Imported, result.Skipped = 0, 0
		ids := make(map[string]bool, len(entries))
		for _, e := range entries {
			ids[e.ID] = true
		}
		for _, e := range incoming {
			if e == nil || strings.TrimSpace(e.Word) == "" {
				result.Skipped++
				continue
			}
			s.normalize(e)
			if ids[e.ID] {
				result.Skipped++
				continue
			}
			ids[e.ID] = true
			entries = append(entries, e)
			result.Imported++
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
