package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/emiranda028/hoteles-sub000/internal/cache"
	"github.com/emiranda028/hoteles-sub000/internal/config"
	"github.com/emiranda028/hoteles-sub000/internal/ingest"
	"github.com/emiranda028/hoteles-sub000/internal/logging"
	"github.com/emiranda028/hoteles-sub000/internal/observability/metrics"
	"github.com/emiranda028/hoteles-sub000/internal/server"
)

var (
	port    = flag.Int("port", 0, "服务端口 (config.toml 优先；仅当未显式配置 port 时生效)")
	devMode = flag.Bool("dev", false, "开发模式")
	dataDir = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
	envFile = flag.String("env", ".env", "环境变量文件")
	initCfg = flag.Bool("initConfig", false, "将当前配置写入可执行文件目录下的 config.toml 后退出")
)

func main() {
	flag.Parse()

	// 加载配置
	cfg, info, err := config.LoadConfigWithInfo(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败，使用默认配置: %v\n", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// 命令行参数覆盖配置
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	exeDir, err := config.GetExeDir()
	if err != nil {
		exeDir = "."
	}
	if *initCfg {
		if err := config.SaveConfig(exeDir, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "写入配置失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("配置已写入 %s\n", filepath.Join(exeDir, "config.toml"))
		return
	}

	logger := logging.Must(logging.New(cfg.Log.Level))
	defer func() { _ = logger.Sync() }()

	root, err := config.EnsureDataDir(exeDir, cfg)
	if err != nil {
		logger.Warn("create data dir failed", zap.Error(err))
		root = cfg.Data.DataDir
	}

	metrics.Init()

	fetcher := ingest.Router{
		Local:  ingest.FileFetcher{Root: root},
		Remote: ingest.NewHTTPFetcher(cfg.Fetch.Timeout(), cfg.Fetch.UserAgent),
	}
	svc := ingest.NewService(fetcher, cache.NewMemory(), ingest.Options{
		HeaderScan: cfg.Report.HeaderScanRows,
		Logger:     logger,
	})
	srv := server.NewServer(cfg, svc, logger)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			zap.Int("port", cfg.Server.Port),
			zap.String("dataDir", root),
			zap.String("config", info.Path),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 等待信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
