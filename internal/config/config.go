package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Log    LogConfig    `toml:"log"`
	Fetch  FetchConfig  `toml:"fetch"`
	Report ReportConfig `toml:"report"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置；相对源路径在 DataDir 下解析
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `toml:"level"`
}

// FetchConfig 远程源下载配置
type FetchConfig struct {
	TimeoutSeconds int    `toml:"timeout_seconds"`
	UserAgent      string `toml:"user_agent"`
}

// Timeout 下载超时
func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// ReportConfig 报表配置
type ReportConfig struct {
	HeaderScanRows int `toml:"header_scan_rows"`
	TopN           int `toml:"top_n"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	PortSpecified bool
	Path          string // config.toml actually read, "" when defaults were used
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20261,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Log: LogConfig{
			Level: "info",
		},
		Fetch: FetchConfig{
			TimeoutSeconds: 30,
			UserAgent:      "hoteles-kpi/1.0",
		},
		Report: ReportConfig{
			HeaderScanRows: 12,
			TopN:           10,
		},
	}
}

// Validate 校验配置
func (c *AppConfig) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	if c.Report.HeaderScanRows <= 0 {
		return fmt.Errorf("report.header_scan_rows must be positive, got %d", c.Report.HeaderScanRows)
	}
	if c.Fetch.TimeoutSeconds < 0 {
		return fmt.Errorf("fetch.timeout_seconds must not be negative, got %d", c.Fetch.TimeoutSeconds)
	}
	return nil
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 从可执行文件目录下的 config.toml 加载配置
func LoadConfigWithInfo(envFile string) (*AppConfig, LoadConfigInfo, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return Load(exeDir, envFile)
}

// Load 依次读取 dir/config.toml、可选 .env 文件与 HOTELES_* 环境变量
// config.toml 或 .env 不存在时不报错
func Load(dir, envFile string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	configPath := filepath.Join(dir, "config.toml")
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		info.PortSpecified = isPortSpecifiedInToml(data)
		info.Path = configPath
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, fmt.Errorf("parse %s: %w", configPath, err)
		}
	case !os.IsNotExist(err):
		return nil, info, err
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, info, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	}

	// 环境变量覆盖
	if v := os.Getenv("HOTELES_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, info, fmt.Errorf("HOTELES_PORT: %w", err)
		}
		config.Server.Port = p
		info.PortSpecified = true
	}
	if v := os.Getenv("HOTELES_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("HOTELES_LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}
	if v := os.Getenv("HOTELES_FETCH_TIMEOUT"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return nil, info, fmt.Errorf("HOTELES_FETCH_TIMEOUT: %w", err)
		}
		config.Fetch.TimeoutSeconds = secs
	}

	return config, info, config.Validate()
}

// SaveConfig 保存配置到 dir/config.toml
func SaveConfig(dir string, config *AppConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.toml"), data, 0644)
}

// EnsureDataDir 确保数据目录存在并返回其绝对路径
// 相对路径以 baseDir 为根
func EnsureDataDir(baseDir string, config *AppConfig) (string, error) {
	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(baseDir, dataDir)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return filepath.Abs(dataDir)
}
