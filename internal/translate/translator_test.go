package translate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"jindam_vocab/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslator(t *testing.T, handler http.HandlerFunc) *GoogleTranslator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tr, err := New(context.Background(), Settings{Endpoint: srv.URL + "/"})
	require.NoError(t, err)
	g, ok := tr.(*GoogleTranslator)
	require.True(t, ok)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func TestGoogleTranslator_Translate(t *testing.T) {
	var gotQuery string
	g := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotQuery = r.Form.Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"저는 공부를 좋아합니다."}]}}`))
	})

	text, err := g.Translate(context.Background(), "我喜欢学习。")
	require.NoError(t, err)
	assert.Equal(t, "저는 공부를 좋아합니다.", text)
	assert.Equal(t, "我喜欢学习。", gotQuery)
}

func TestGoogleTranslator_Quota(t *testing.T) {
	g := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"Rate Limit Exceeded"}}`))
	})

	_, err := g.Translate(context.Background(), "我喜欢学习。")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUpstreamQuota))
	assert.Contains(t, err.Error(), "API 할당량 초과")
}

func TestGoogleTranslator_UpstreamError(t *testing.T) {
	g := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"Permission denied"}}`))
	})

	_, err := g.Translate(context.Background(), "你好")
	assert.ErrorIs(t, err, model.ErrUpstream)
	assert.False(t, errors.Is(err, model.ErrUpstreamQuota))
}

func TestNopTranslator(t *testing.T) {
	tr, err := New(context.Background(), Settings{})
	require.NoError(t, err)

	_, err = tr.Translate(context.Background(), "你好")
	assert.ErrorIs(t, err, ErrTranslatorUnavailable)
}

func TestSettings_ClientOptions(t *testing.T) {
	assert.Empty(t, Settings{}.ClientOptions())
	assert.Len(t, Settings{CredentialsJSON: "{}"}.ClientOptions(), 1)
	assert.Len(t, Settings{Endpoint: "http://localhost:1/"}.ClientOptions(), 2)
	assert.Len(t, Settings{CredentialsFile: "sa.json", Endpoint: "http://localhost:1/"}.ClientOptions(), 2)
}
