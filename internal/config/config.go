package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port  string // サーバーポート（8080）
	GoEnv string // dev/prod

	LatencyFactor    float64       // 擬似レイテンシの倍率（0で無効）
	DispatchInterval time.Duration // 配達ステータスを進める間隔（0で無効）
	ShutdownTimeout  time.Duration // 停止時にリクエストを待つ時間
}

// Loadは環境変数
func Load() (Config, error) {
	factor, err := floatOr("LATENCY_FACTOR", 1.0)
	if err != nil {
		return Config{}, err
	}
	dispatch, err := durationOr("DISPATCH_INTERVAL", 0)
	if err != nil {
		return Config{}, err
	}
	shutdown, err := durationOr("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:             getenv("PORT", "8080"),
		GoEnv:            getenv("GO_ENV", "dev"),
		LatencyFactor:    factor,
		DispatchInterval: dispatch,
		ShutdownTimeout:  shutdown,
	}

	//値チェック
	if cfg.LatencyFactor < 0 {
		return Config{}, fmt.Errorf("LATENCY_FACTOR must be >= 0")
	}
	if cfg.DispatchInterval < 0 {
		return Config{}, fmt.Errorf("DISPATCH_INTERVAL must be >= 0")
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}

	return cfg, nil
}

// ":8080" 形式のアドレス
func (c Config) Addr() string {
	if c.Port != "" && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func floatOr(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return f, nil
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}
