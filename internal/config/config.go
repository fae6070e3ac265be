package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config アプリケーション全体の設定
// APIキーは型の上では任意だが、欠けている機能は起動時に無効化される
type Config struct {
	// サーバー設定
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// CORS設定
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`

	// OpenAI設定（未設定の場合、コース生成エンドポイントは500を返す）
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel  string `envconfig:"OPENAI_MODEL" default:"gpt-4o-search-preview"`

	// Kakao Mobility設定（未設定の場合、経路エンリッチは静かに無効化される）
	KakaoRESTAPIKey string `envconfig:"KAKAO_REST_API_KEY"`
}

// LoadConfig 環境変数から設定を読み込む
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("設定の読み込みに失敗: %w", err)
	}
	return &cfg, nil
}

// HasOpenAI OpenAI APIキーが設定されているかどうか
func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}

// HasKakao Kakao REST APIキーが設定されているかどうか
func (c *Config) HasKakao() bool {
	return c.KakaoRESTAPIKey != ""
}
