// internal/handlers/router_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"jindam_vocab/internal/handlers"
	"jindam_vocab/internal/service/mocks"

	"github.com/stretchr/testify/require"
)

// testRouter はモックサービスを差し込んだルーター
type testRouter struct {
	handler    http.Handler
	wordInfo   *mocks.WordInfoService
	examples   *mocks.ExampleService
	vocabulary *mocks.VocabularyService
}

func newTestRouter(t *testing.T, ping handlers.Pinger) *testRouter {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tr := &testRouter{
		wordInfo:   mocks.NewWordInfoService(t),
		examples:   mocks.NewExampleService(t),
		vocabulary: mocks.NewVocabularyService(t),
	}
	tr.handler = handlers.NewRouter(handlers.RouterDeps{
		Health:           handlers.NewHealthHandler(ping, logger),
		Provider:         handlers.NewProviderHandler(tr.wordInfo, tr.examples, logger),
		Vocabulary:       handlers.NewVocabularyHandler(tr.vocabulary, logger),
		CORS:             handlers.DefaultCORSOptions(),
		DefaultNamespace: "default",
		Logger:           logger,
	})
	return tr
}

func (tr *testRouter) do(method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	tr.handler.ServeHTTP(rr, req)
	return rr
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}
