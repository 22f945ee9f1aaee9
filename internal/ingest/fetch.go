package ingest

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Fetcher 按路径获取原始字节；实现不做重试
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// FileFetcher 本地文件读取；相对路径在 Root 下解析
type FileFetcher struct {
	Root string
}

// Fetch 读取本地文件
func (f FileFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full := path
	if !filepath.IsAbs(full) && f.Root != "" {
		full = filepath.Join(f.Root, full)
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// HTTPFetcher 下载 http(s) 数据源；非 2xx 状态视为失败
type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher 创建基于 resty 的下载器
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	client := resty.New()
	client.SetTimeout(timeout)
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &HTTPFetcher{client: client}
}

// Fetch 下载远程数据源
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode())
	}
	return resp.Body(), nil
}

// Router http(s) 地址交给 Remote，其余交给 Local
type Router struct {
	Local  Fetcher
	Remote Fetcher
}

// Fetch 按路径协议分发
func (r Router) Fetch(ctx context.Context, path string) ([]byte, error) {
	lower := strings.ToLower(path)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		if r.Remote == nil {
			return nil, fmt.Errorf("no remote fetcher for %s", path)
		}
		return r.Remote.Fetch(ctx, path)
	}
	if r.Local == nil {
		return nil, fmt.Errorf("no local fetcher for %s", path)
	}
	return r.Local.Fetch(ctx, path)
}
