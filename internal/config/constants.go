// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "KotobaKeep"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultLessonBatchSize = 15  // レッスン1回分のカード枚数
	DefaultReviewLimit     = 100 // 1回のレビュー取得上限
	DefaultPracticeLimit   = 10  // 練習問題の出題数
	DefaultJWTExpiryHours  = 24
	DefaultSessionTTLHours = 72 // ゲストセッションの保持時間
)
