package extractor

import (
	"errors"
	"testing"

	"jindam_vocab/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractWordInfo(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    model.WordInfo
		wantErr bool
	}{
		{
			name: "正常系: ラベル付きの行",
			text: "병음: xué xí\n의미: 공부하다",
			want: model.WordInfo{Pinyin: "xué xí", Meaning: "공부하다"},
		},
		{
			name: "正常系: ピンインの句読点だけ除去される",
			text: "병음: chī fàn.\n의미: 밥을 먹다.",
			want: model.WordInfo{Pinyin: "chī fàn", Meaning: "밥을 먹다."},
		},
		{
			name: "正常系: 全角記号も除去",
			text: "병음 : nǐ hǎo！？\n의미 : 안녕하세요",
			want: model.WordInfo{Pinyin: "nǐ hǎo", Meaning: "안녕하세요"},
		},
		{
			name: "正常系: 前後に余計な文がある",
			text: "다음은 단어 정보입니다.\n\n병음: gōng zuò\n의미: 일하다\n감사합니다",
			want: model.WordInfo{Pinyin: "gōng zuò", Meaning: "일하다"},
		},
		{
			name: "フォールバック: 발음 と 뜻 のラベル",
			text: "발음: shuì jiào,\n뜻: 잠을 자다",
			want: model.WordInfo{Pinyin: "shuì jiào", Meaning: "잠을 자다"},
		},
		{
			name: "フォールバック: コロンなし",
			text: "발음 lái\n뜻 오다",
			want: model.WordInfo{Pinyin: "lái", Meaning: "오다"},
		},
		{
			name: "フォールバック: 1行目は無関係",
			text: "결과\n발음: qù!\n뜻: 가다",
			want: model.WordInfo{Pinyin: "qù", Meaning: "가다"},
		},
		{
			name:    "異常系: ラベルなし",
			text:    "이 단어에 대한 정보를 찾을 수 없습니다.",
			wantErr: true,
		},
		{
			name:    "異常系: 意味だけ",
			text:    "의미: 먹다",
			wantErr: true,
		},
		{
			name:    "異常系: 空文字列",
			text:    "",
			wantErr: true,
		},
		{
			name:    "異常系: エラーペイロード",
			text:    `{"error":{"message":"병음: x 의미: y","code":500}}`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractWordInfo(tc.text)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, model.ErrParse))
				var parseErr *model.ParseError
				assert.True(t, errors.As(err, &parseErr))
				assert.Equal(t, model.WordInfo{}, got)
				assert.Equal(t, model.WordInfo{}, WordInfoOrBlank(got, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseWordInfo(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		got, err := ParseWordInfo(model.NewTextResponse("병음: chī\n의미: 먹다"))
		require.NoError(t, err)
		assert.Equal(t, model.WordInfo{Pinyin: "chī", Meaning: "먹다"}, got)
	})

	t.Run("異常系: エラーボディは解析しない", func(t *testing.T) {
		resp := model.NewProviderErrorResponse("병음: chī\n의미: 먹다", 500)
		got, err := ParseWordInfo(resp)
		assert.ErrorIs(t, err, model.ErrParse)
		assert.Equal(t, model.WordInfo{}, got)
	})

	t.Run("異常系: candidates が空", func(t *testing.T) {
		_, err := ParseWordInfo(&model.ProviderResponse{})
		assert.ErrorIs(t, err, model.ErrParse)
	})

	t.Run("異常系: nil", func(t *testing.T) {
		_, err := ParseWordInfo(nil)
		assert.ErrorIs(t, err, model.ErrParse)
	})
}

func TestDecodeProviderResponse(t *testing.T) {
	text, err := DecodeProviderResponse([]byte(`{"candidates":[{"content":{"parts":[{"text":"병음: hǎo"}]}}]}`))
	require.NoError(t, err)
	assert.Equal(t, "병음: hǎo", text)

	_, err = DecodeProviderResponse([]byte(`not json`))
	assert.ErrorIs(t, err, model.ErrParse)

	_, err = DecodeProviderResponse([]byte(`{"error":{"message":"boom","code":500}}`))
	assert.ErrorIs(t, err, model.ErrParse)
}
