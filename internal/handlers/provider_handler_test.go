package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"jindam_vocab/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var longWord = strings.Repeat("学", 40)

func TestProviderHandler_PostWordInfo(t *testing.T) {
	tests := []struct {
		name        string
		body        []byte
		setupMock   func(tr *testRouter)
		wantStatus  int
		wantText    string
		wantMessage string
	}{
		{
			name: "正常系: 単語情報を返す",
			body: []byte(`{"word":"学习"}`),
			setupMock: func(tr *testRouter) {
				tr.wordInfo.On("GetWordInfo", mock.Anything, "学习").
					Return(model.NewTextResponse("병음: xuéxí\n의미: 공부하다"), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantText:   "병음: xuéxí\n의미: 공부하다",
		},
		{
			name: "正常系: 未知のフィールドと長い単語も受け付ける",
			body: []byte(`{"word":"` + longWord + `","clientVersion":"1.0"}`),
			setupMock: func(tr *testRouter) {
				tr.wordInfo.On("GetWordInfo", mock.Anything, longWord).
					Return(model.NewTextResponse("병음: \n의미: "), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantText:   "병음: \n의미: ",
		},
		{
			name:        "異常系: 単語が空",
			body:        []byte(`{"word":""}`),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "단어은(는) 필수 항목입니다.",
		},
		{
			name:        "異常系: 不正なJSON",
			body:        []byte(`{"word":`),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "요청 본문의 형식이 올바르지 않습니다.",
		},
		{
			name: "異常系: サービスエラー",
			body: []byte(`{"word":"学习"}`),
			setupMock: func(tr *testRouter) {
				tr.wordInfo.On("GetWordInfo", mock.Anything, "学习").
					Return(nil, fmt.Errorf("boom")).Once()
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "서버 오류",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := newTestRouter(t, nil)
			if tc.setupMock != nil {
				tc.setupMock(tr)
			}

			rr := tr.do(http.MethodPost, "/api/word-info", tc.body, nil)

			assert.Equal(t, tc.wantStatus, rr.Code)
			got := decode[model.ProviderResponse](t, rr)
			if tc.wantText != "" {
				require.Len(t, got.Candidates, 1)
				assert.Equal(t, tc.wantText, got.Candidates[0].Content.Parts[0].Text)
				assert.Nil(t, got.Error)
				return
			}
			require.NotNil(t, got.Error)
			assert.Equal(t, tc.wantStatus, got.Error.Code)
			if tc.wantMessage != "" {
				assert.Equal(t, tc.wantMessage, got.Error.Message)
			}
		})
	}
}

func TestProviderHandler_PostGenerateExamples(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		tr := newTestRouter(t, nil)
		tr.examples.On("GenerateExamples", mock.Anything, &model.GenerateExamplesRequest{Word: "学习", Pinyin: "xuéxí", Meaning: "공부하다"}).
			Return(model.NewTextResponse("1. 중국어 예문: 我喜欢学习。"), nil).Once()

		rr := tr.do(http.MethodPost, "/api/generate-examples", []byte(`{"word":"学习","pinyin":"xuéxí","meaning":"공부하다"}`), nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		got := decode[model.ProviderResponse](t, rr)
		require.Len(t, got.Candidates, 1)
		assert.Equal(t, "1. 중국어 예문: 我喜欢学习。", got.Candidates[0].Content.Parts[0].Text)
	})

	t.Run("異常系: クォータ超過は429と固定メッセージ", func(t *testing.T) {
		tr := newTestRouter(t, nil)
		tr.examples.On("GenerateExamples", mock.Anything, mock.Anything).
			Return(nil, &model.UpstreamError{StatusCode: http.StatusTooManyRequests, Message: model.QuotaExceededMessage}).Once()

		rr := tr.do(http.MethodPost, "/api/generate-examples", []byte(`{"word":"学习"}`), nil)

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		got := decode[model.ProviderResponse](t, rr)
		require.NotNil(t, got.Error)
		assert.Equal(t, http.StatusTooManyRequests, got.Error.Code)
		assert.Contains(t, got.Error.Message, "API 할당량 초과")
	})

	t.Run("異常系: 未知のフィールド", func(t *testing.T) {
		tr := newTestRouter(t, nil)
		rr := tr.do(http.MethodPost, "/api/generate-examples", []byte(`{"word":"学习","extra":1}`), nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
