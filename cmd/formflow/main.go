// =============================================================================
// FormFlow 主入口
// =============================================================================
// 参数化文化家具生成引擎的命令行入口
//
// 使用方法:
//
//	formflow generate --params params.json           # 生成单件家具
//	formflow batch --request request.json            # 批量生成
//	formflow batch --request request.json --metrics-addr :9090
//	formflow version                                 # 显示版本信息
// =============================================================================

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BaSui01/formflow/analyzer"
	"github.com/BaSui01/formflow/config"
	"github.com/BaSui01/formflow/culture"
	"github.com/BaSui01/formflow/engine"
	"github.com/BaSui01/formflow/internal/metrics"
	"github.com/BaSui01/formflow/internal/telemetry"
	"github.com/BaSui01/formflow/store"
	"github.com/BaSui01/formflow/templates"
	"github.com/BaSui01/formflow/types"
)

// =============================================================================
// 📦 版本信息（构建时注入）
// =============================================================================

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// =============================================================================
// 🎯 主函数
// =============================================================================

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		runGenerate(os.Args[2:])
	case "batch":
		runBatch(os.Args[2:])
	case "version":
		printVersion()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// =============================================================================
// 🪑 generate 命令
// =============================================================================

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	paramsPath := fs.String("params", "", "Path to parameters JSON file")
	fs.Parse(args)

	if *paramsPath == "" {
		fmt.Fprintln(os.Stderr, "--params is required")
		os.Exit(1)
	}

	var params types.ParametricParameters
	if err := readJSONFile(*paramsPath, &params); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read parameters: %v\n", err)
		os.Exit(1)
	}

	app, cleanup := buildApp(*configPath, "")
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := app.engine.GenerateSinglePiece(ctx, params)
	if err != nil {
		app.logger.Fatal("generation failed", zap.Error(err))
	}

	printJSON(result)
}

// =============================================================================
// 🎉 batch 命令
// =============================================================================

func runBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	requestPath := fs.String("request", "", "Path to batch request JSON file")
	metricsAddr := fs.String("metrics-addr", "", "Expose Prometheus metrics on this address (e.g. :9090)")
	fs.Parse(args)

	if *requestPath == "" {
		fmt.Fprintln(os.Stderr, "--request is required")
		os.Exit(1)
	}

	var req types.UserFurnitureRequest
	if err := readJSONFile(*requestPath, &req); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read request: %v\n", err)
		os.Exit(1)
	}

	app, cleanup := buildApp(*configPath, *metricsAddr)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	batch, err := app.engine.GenerateBatch(ctx, &req)
	if err != nil {
		app.logger.Fatal("batch generation failed", zap.Error(err))
	}

	printJSON(batch)
}

// =============================================================================
// 🔧 应用装配
// =============================================================================

type app struct {
	engine *engine.Engine
	logger *zap.Logger
}

// buildApp 装配完整引擎：配置、日志、遥测、缓存、持久化、指标
func buildApp(configPath, metricsAddr string) (*app, func()) {
	loader := config.NewLoader()
	if configPath != "" {
		loader = loader.WithConfigPath(configPath)
	}
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg.Log)

	logger.Info("Starting FormFlow",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit),
	)

	// Initialize OpenTelemetry
	otelProviders, err := telemetry.Init(cfg.Telemetry, logger,
		attribute.String("formflow.build_commit", GitCommit),
		attribute.Bool("formflow.cache.redis", cfg.Redis.Enabled),
		attribute.Bool("formflow.catalog", cfg.Store.Enabled),
	)
	if err != nil {
		logger.Warn("failed to initialize telemetry", zap.Error(err))
	}

	// 初始化 Redis 二级缓存
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		logger.Info("Redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	cache := engine.NewGenerationCache(rdb, buildCacheConfig(cfg), logger)

	// 初始化 Prometheus 指标
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector("formflow", registry, logger)

	var metricsServer *http.Server
	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		metricsServer = &http.Server{Addr: metricsAddr, Handler: mux}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Warn("metrics server stopped", zap.Error(err))
			}
		}()
		logger.Info("Prometheus metrics exposed", zap.String("addr", metricsAddr))
	}

	// 初始化生成目录持久化
	var catalog *store.Catalog
	if cfg.Store.Enabled {
		catalog, err = store.Open(cfg.Store.Path, logger)
		if err != nil {
			logger.Warn("Catalog not available, persistence disabled", zap.Error(err))
			catalog = nil
		}
	}

	// 装配引擎
	cultures := culture.NewStore()
	registry2 := templates.NewRegistry()

	resilient := analyzer.NewResilient(
		analyzer.NewHeuristic(cultures),
		analyzer.DefaultResilientConfig(),
		logger,
	)

	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithAnalyzer(resilient),
		engine.WithCache(cache),
		engine.WithCollector(collector),
		engine.WithConfig(&engine.Config{
			CorrectionThreshold: cfg.Engine.CorrectionThreshold,
			AnalyzerTimeout:     cfg.Engine.AnalyzerTimeout,
			MetricsWindow:       cfg.Engine.MetricsWindow,
			MaxFallbackPieces:   cfg.Engine.MaxFallbackPieces,
		}),
	}
	if catalog != nil {
		opts = append(opts, engine.WithRecordSink(catalog))
	}

	eng := engine.New(cultures, registry2, opts...)

	cleanup := func() {
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			metricsServer.Shutdown(shutdownCtx)
			cancel()
		}
		if catalog != nil {
			if err := catalog.Close(); err != nil {
				logger.Warn("failed to close catalog", zap.Error(err))
			}
		}
		if rdb != nil {
			rdb.Close()
		}
		if otelProviders != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := otelProviders.Shutdown(shutdownCtx); err != nil {
				logger.Warn("failed to shut down telemetry", zap.Error(err))
			}
			cancel()
		}
		logger.Sync()
	}

	return &app{engine: eng, logger: logger}, cleanup
}

// buildCacheConfig 将应用配置映射为引擎缓存配置。本地 LRU 始终开启,
// Redis 二级缓存跟随 Redis 配置开关。
func buildCacheConfig(cfg *config.Config) *engine.CacheConfig {
	return &engine.CacheConfig{
		LocalMaxSize: cfg.Cache.LocalMaxSize,
		LocalTTL:     cfg.Cache.LocalTTL,
		RedisTTL:     cfg.Cache.RedisTTL,
		EnableLocal:  true,
		EnableRedis:  cfg.Redis.Enabled,
	}
}

// =============================================================================
// 📋 版本和帮助
// =============================================================================

func printVersion() {
	fmt.Printf("FormFlow %s\n", Version)
	fmt.Printf("  Build Time: %s\n", BuildTime)
	fmt.Printf("  Git Commit: %s\n", GitCommit)
}

func printUsage() {
	fmt.Println(`FormFlow - Parametric Cultural Furniture Generation Engine

Usage:
  formflow <command> [options]

Commands:
  generate  Generate a single furniture piece from a parameters file
  batch     Generate a furniture set from a batch request file
  version   Show version information
  help      Show this help message

Options for 'generate':
  --params <path>   Path to parameters JSON file (required)
  --config <path>   Path to configuration file (YAML)

Options for 'batch':
  --request <path>       Path to batch request JSON file (required)
  --config <path>        Path to configuration file (YAML)
  --metrics-addr <addr>  Expose Prometheus /metrics on this address

Examples:
  formflow generate --params chair.json
  formflow batch --request dinner-party.json
  formflow batch --request dinner-party.json --metrics-addr :9090
  formflow version`)
}

// =============================================================================
// 🔧 日志初始化
// =============================================================================

func initLogger(cfg config.LogConfig) *zap.Logger {
	// 解析日志级别
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	// 配置编码器
	var encoderConfig zapcore.EncoderConfig
	encoding := "json"
	if cfg.Format == "console" {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoding = "console"
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	// 构建配置
	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      cfg.Format == "console",
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	buildOpts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	if cfg.EnableCaller {
		buildOpts = append(buildOpts, zap.AddCaller())
	}

	logger, err := zapConfig.Build(buildOpts...)
	if err != nil {
		// 回退到基本 logger
		logger, _ = zap.NewProduction()
	}

	return logger
}

// =============================================================================
// 🔍 辅助函数
// =============================================================================

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
