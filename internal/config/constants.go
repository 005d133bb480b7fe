// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "jindam-vocab"
	AppVersion = "1.0.0"
	// APILabel は /api/health で返す翻訳プロバイダの表示名
	APILabel = "Google Cloud Translation (서비스 계정)"
	// HealthMessage は /api/health で返すメッセージ
	HealthMessage = "서버가 정상적으로 실행 중입니다"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8080"
	DefaultLogLevel         = "info"
	DefaultDatabaseURL      = "sqlite://jindam.db"
	DefaultNamespace        = "default"
	DefaultTimezone         = "Asia/Seoul"
	DefaultRequestTimeout   = 60
	DefaultShutdownTimeout  = 5
	DefaultClientAPITimeout = 30
)
