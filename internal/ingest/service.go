// Package ingest 把源路径变成缓存的类型化数据集：获取字节、解码表格、
// 选择工作表、解析表头并构建记录
package ingest

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emiranda028/hoteles-sub000/internal/cache"
	"github.com/emiranda028/hoteles-sub000/internal/logging"
	"github.com/emiranda028/hoteles-sub000/internal/model"
	"github.com/emiranda028/hoteles-sub000/internal/observability/metrics"
	"github.com/emiranda028/hoteles-sub000/internal/parser"
	"github.com/emiranda028/hoteles-sub000/internal/reader"
)

// Status 加载结果状态
type Status string

const (
	StatusOK        Status = "ok"
	StatusEmpty     Status = "empty"     // readable, but no usable rows
	StatusDiscarded Status = "discarded" // superseded before completion
)

// Request 一次加载请求
type Request struct {
	Path    string
	Source  model.SourceKind // inferred from the extension when unknown
	Records model.RecordKind // recognized from the headers when unknown
	Sheet   string
}

// Diagnostics 供调用方展示的解析诊断
type Diagnostics struct {
	Sheets     []string          `json:"sheets"`
	Sheet      string            `json:"sheet"`
	HeaderRow  int               `json:"headerRow"`
	Headers    []string          `json:"headers,omitempty"`
	Resolved   map[string]string `json:"resolved,omitempty"`
	Unresolved []string          `json:"unresolved,omitempty"`
	Accepted   int               `json:"accepted"`
	Rejected   map[string]int    `json:"rejected,omitempty"`
	Reason     string            `json:"reason,omitempty"`
}

// Result 加载结果
type Result struct {
	Status      Status         `json:"status"`
	Dataset     *model.Dataset `json:"dataset,omitempty"`
	Cached      bool           `json:"cached"`
	Diagnostics Diagnostics    `json:"diagnostics"`
}

// Empty 本次加载是否没有产生记录
func (r *Result) Empty() bool {
	return r == nil || r.Status != StatusOK
}

// Options 服务选项
type Options struct {
	HeaderScan int
	Logger     *zap.Logger
}

// Service 数据源加载服务
type Service struct {
	fetcher    Fetcher
	cache      cache.Store
	recognizer *parser.SheetRecognizer
	headerScan int
	logger     *zap.Logger
	now        func() time.Time
}

// NewService 创建加载服务
func NewService(fetcher Fetcher, store cache.Store, opts Options) *Service {
	if store == nil {
		store = cache.NewMemory()
	}
	if opts.HeaderScan <= 0 {
		opts.HeaderScan = parser.DefaultHeaderScan
	}
	return &Service{
		fetcher:    fetcher,
		cache:      store,
		recognizer: parser.NewSheetRecognizer(opts.HeaderScan),
		headerScan: opts.HeaderScan,
		logger:     logging.Named(opts.Logger, "ingest"),
		now:        time.Now,
	}
}

// Load 返回 req.Path 对应的数据集，未命中缓存时解析
// 获取或解码失败返回匹配 model.ErrSourceUnreadable 的错误；
// 无法由扩展名推断格式时原样返回 model.ErrUnsupportedKind
// ctx 取消或 stillRelevant 在字节到达后返回 false 时结果被丢弃：不写缓存，也不返回错误
func (s *Service) Load(ctx context.Context, req Request, stillRelevant func() bool) (*Result, error) {
	if req.Path == "" {
		return nil, model.NewSourceError(req.Path, errors.New("empty source path"))
	}
	kind := req.Source
	if kind == model.SourceUnknown {
		k, err := model.KindFromPath(req.Path)
		if err != nil {
			// 调用方错误，不属于源不可读
			return nil, err
		}
		kind = k
	}

	if ds, ok := s.cache.Get(req.Path); ok && matches(ds, kind, req) {
		metrics.IncCacheLookup(true)
		return resultOf(ds, true), nil
	}
	metrics.IncCacheLookup(false)

	start := s.now()
	data, err := s.fetcher.Fetch(ctx, req.Path)
	if superseded(ctx, stillRelevant) {
		return s.discard(req, kind), nil
	}
	if err != nil {
		s.logger.Warn("source unreadable", zap.String("path", req.Path), zap.Error(err))
		metrics.ObserveLoad(string(kind), metrics.ResultUnreadable, 0)
		return nil, model.NewSourceError(req.Path, err)
	}

	book, err := reader.Read(req.Path, data, kind)
	if err != nil {
		s.logger.Warn("source undecodable", zap.String("path", req.Path), zap.Error(err))
		metrics.ObserveLoad(string(kind), metrics.ResultUnreadable, 0)
		return nil, err
	}

	table, rec, err := s.recognizer.SelectTable(book, req.Records, req.Sheet)
	if err != nil {
		reason := err.Error()
		s.logger.Info("no table selected", zap.String("path", req.Path), zap.String("reason", reason))
		metrics.ObserveLoad(string(kind), metrics.ResultEmpty, s.now().Sub(start))
		return &Result{
			Status:      StatusEmpty,
			Diagnostics: Diagnostics{Sheets: book.Names(), HeaderRow: -1, Reason: reason},
		}, nil
	}

	records := req.Records
	if records == model.RecordUnknown {
		records = rec.Kind
	}
	if records == model.RecordUnknown {
		s.logger.Info("no record kind recognized", zap.String("path", req.Path), zap.String("sheet", table.Name))
		metrics.ObserveLoad(string(kind), metrics.ResultEmpty, s.now().Sub(start))
		return &Result{
			Status: StatusEmpty,
			Diagnostics: Diagnostics{
				Sheets:    book.Names(),
				Sheet:     table.Name,
				HeaderRow: rec.HeaderRow,
				Headers:   rec.Mapping.Headers,
				Reason:    "no record kind recognized",
			},
		}, nil
	}

	out := parser.ParseTable(records, table, s.headerScan)
	ds := &model.Dataset{
		ID:          uuid.NewString(),
		Path:        req.Path,
		Source:      kind,
		Kind:        records,
		Sheet:       table.Name,
		Sheets:      book.Names(),
		Headers:     out.Mapping.Named(),
		Unresolved:  out.Mapping.Unresolved,
		HeaderRow:   out.HeaderRow,
		Accepted:    out.Accepted(),
		Rejected:    out.RejectedByReason(),
		LoadedAt:    s.now(),
		Operational: out.Operational,
		Membership:  out.Membership,
		Nationality: out.Nationality,
	}

	if superseded(ctx, stillRelevant) {
		return s.discard(req, kind), nil
	}
	s.cache.Put(req.Path, ds)
	metrics.SetCacheEntries(s.cache.Count())

	res := resultOf(ds, false)
	res.Diagnostics.Headers = out.Mapping.Headers
	metrics.ObserveLoad(string(kind), string(res.Status), s.now().Sub(start))
	metrics.AddRows(string(records), ds.Accepted, ds.Rejected)

	s.logger.Info("source loaded",
		zap.String("path", req.Path),
		zap.String("kind", string(records)),
		zap.String("sheet", table.Name),
		zap.Int("headerRow", out.HeaderRow),
		zap.Int("accepted", ds.Accepted),
		zap.Int("rejected", ds.RejectedTotal()),
	)
	for _, r := range out.Rejections {
		s.logger.Debug("row rejected",
			zap.String("path", req.Path),
			zap.Int("row", r.Row),
			zap.String("reason", string(r.Reason)),
			zap.String("field", r.Field),
		)
	}
	return res, nil
}

// Reload 删除 path 的缓存，下一次 Load 重新解析
func (s *Service) Reload(path string) bool {
	ok := s.cache.Invalidate(path)
	metrics.SetCacheEntries(s.cache.Count())
	s.logger.Info("source invalidated", zap.String("path", path), zap.Bool("cached", ok))
	return ok
}

// ReloadAll 清空全部缓存
func (s *Service) ReloadAll() {
	s.cache.Clear()
	metrics.SetCacheEntries(0)
}

// Cached 返回已缓存的源路径
func (s *Service) Cached() []string {
	return s.cache.Paths()
}

func (s *Service) discard(req Request, kind model.SourceKind) *Result {
	s.logger.Debug("load superseded", zap.String("path", req.Path))
	metrics.ObserveLoad(string(kind), metrics.ResultDiscarded, 0)
	return &Result{Status: StatusDiscarded, Diagnostics: Diagnostics{HeaderRow: -1}}
}

func superseded(ctx context.Context, stillRelevant func() bool) bool {
	if ctx.Err() != nil {
		return true
	}
	return stillRelevant != nil && !stillRelevant()
}

// matches 缓存条目能否回答 req；记录类型或工作表不同时需要重新解析并替换条目
func matches(ds *model.Dataset, kind model.SourceKind, req Request) bool {
	if ds.Source != kind {
		return false
	}
	if req.Records != model.RecordUnknown && ds.Kind != req.Records {
		return false
	}
	return req.Sheet == "" || ds.Sheet == req.Sheet
}

func resultOf(ds *model.Dataset, cached bool) *Result {
	status := StatusOK
	if ds.Len() == 0 {
		status = StatusEmpty
	}
	return &Result{
		Status:  status,
		Dataset: ds,
		Cached:  cached,
		Diagnostics: Diagnostics{
			Sheets:     ds.Sheets,
			Sheet:      ds.Sheet,
			HeaderRow:  ds.HeaderRow,
			Resolved:   ds.Headers,
			Unresolved: ds.Unresolved,
			Accepted:   ds.Accepted,
			Rejected:   ds.Rejected,
		},
	}
}
