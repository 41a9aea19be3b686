// =============================================================================
// 🎛️ FormFlow 默认配置
// =============================================================================
package config

import "time"

// DefaultConfig 返回带有合理默认值的配置
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			CorrectionThreshold: 0.7,
			AnalyzerTimeout:     10 * time.Second,
			MetricsWindow:       100,
			MaxFallbackPieces:   8,
		},
		Cache: CacheConfig{
			LocalMaxSize: 512,
			LocalTTL:     30 * time.Minute,
			RedisTTL:     6 * time.Hour,
		},
		Redis: RedisConfig{
			Enabled:  false,
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
			PoolSize: 10,
		},
		Store: StoreConfig{
			Enabled: false,
			Path:    "formflow.db",
		},
		Log: LogConfig{
			Level:        "info",
			Format:       "json",
			EnableCaller: true,
		},
		Telemetry: TelemetryConfig{
			Enabled:      false,
			OTLPEndpoint: "localhost:4318",
			ServiceName:  "formflow",
			SampleRate:   1.0,
		},
	}
}
