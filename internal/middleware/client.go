package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"jindam_vocab/internal/model"
	"jindam_vocab/internal/webutil"
)

// ClientIDHeader は単語帳の名前空間を指定するヘッダー
const ClientIDHeader = "X-Client-ID"

type namespaceCtxKey struct{}

var validNamespace = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// ClientNamespaceMiddleware は X-Client-ID ヘッダーから名前空間を取り出してコンテキストに設定します。
// ヘッダーが無い場合は defaultNamespace を使います。認証は行いません
func ClientNamespaceMiddleware(defaultNamespace string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			namespace := r.Header.Get(ClientIDHeader)
			if namespace == "" {
				namespace = defaultNamespace
			}
			if !validNamespace.MatchString(namespace) {
				logger.Warn("Invalid client id", slog.String("client_id", namespace))
				appErr := model.NewAppError("INVALID_CLIENT_ID", "X-Client-ID 헤더 형식이 올바르지 않습니다.", ClientIDHeader, model.ErrInvalidInput)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), namespaceCtxKey{}, namespace)
			ctx = WithLogger(ctx, logger.With(slog.String("namespace", namespace)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetNamespace はコンテキストから名前空間を取得します。未設定なら空文字列
func GetNamespace(ctx context.Context) string {
	namespace, _ := ctx.Value(namespaceCtxKey{}).(string)
	return namespace
}
