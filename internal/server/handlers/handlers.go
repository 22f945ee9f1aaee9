package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/emiranda028/hoteles-sub000/internal/exporter"
	"github.com/emiranda028/hoteles-sub000/internal/ingest"
	"github.com/emiranda028/hoteles-sub000/internal/kpi"
	"github.com/emiranda028/hoteles-sub000/internal/logging"
	"github.com/emiranda028/hoteles-sub000/internal/model"
	"github.com/emiranda028/hoteles-sub000/internal/normalize"
	"github.com/emiranda028/hoteles-sub000/internal/observability/metrics"
)

// Handlers 报表 API 处理器
type Handlers struct {
	ingest   *ingest.Service
	exporter *exporter.Exporter
	topN     int
	logger   *zap.Logger
}

// NewHandlers 创建处理器
func NewHandlers(svc *ingest.Service, topN int, logger *zap.Logger) *Handlers {
	if topN <= 0 {
		topN = 10
	}
	return &Handlers{
		ingest:   svc,
		exporter: exporter.NewExporter(topN),
		topN:     topN,
		logger:   logging.Named(logger, "api"),
	}
}

// RegisterRoutes 注册路由
func (h *Handlers) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/sources", h.ListSources)
	router.POST("/sources/reload", h.Reload)

	sources := router.Group("/sources/:kind")
	sources.GET("/summary", h.Summary)
	sources.GET("/monthly", h.Monthly)
	sources.GET("/weekday", h.Weekday)
	sources.GET("/hotels", h.Hotels)
	sources.GET("/membership", h.Membership)
	sources.GET("/nationality", h.Nationality)
	sources.GET("/export", h.Export)
}

// ReportResponse 报表响应；Empty 与错误状态相互区分
type ReportResponse struct {
	Empty       bool               `json:"empty"`
	Status      ingest.Status      `json:"status"`
	Cached      bool               `json:"cached"`
	Dataset     *model.Dataset     `json:"dataset,omitempty"`
	Diagnostics ingest.Diagnostics `json:"diagnostics"`
	Filter      model.Filter       `json:"filter"`
	Report      any                `json:"report,omitempty"`
}

// query 解析后的请求参数
type query struct {
	req    ingest.Request
	filter model.Filter
	top    int
}

// Summary 数据源概览
// GET /api/sources/:kind/summary
func (h *Handlers) Summary(c *gin.Context) {
	h.report(c, "summary", model.RecordUnknown, func(ds *model.Dataset, q query) any {
		switch ds.Kind {
		case model.RecordOperational:
			return kpi.Compare(ds.Operational, q.filter)
		case model.RecordMembership:
			return kpi.MembershipMix(ds.Membership, q.filter, q.top)
		case model.RecordNationality:
			return kpi.NationalityRanking(ds.Nationality, q.filter, q.top)
		}
		return nil
	})
}

// Monthly 月度对比
// GET /api/sources/:kind/monthly
func (h *Handlers) Monthly(c *gin.Context) {
	h.report(c, "monthly", model.RecordOperational, func(ds *model.Dataset, q query) any {
		return kpi.MonthlySeries(ds.Operational, q.filter)
	})
}

// Weekday 按星期聚合
// GET /api/sources/:kind/weekday
func (h *Handlers) Weekday(c *gin.Context) {
	h.report(c, "weekday", model.RecordOperational, func(ds *model.Dataset, q query) any {
		return kpi.ByWeekday(ds.Operational, q.filter)
	})
}

// Hotels 按酒店聚合
// GET /api/sources/:kind/hotels
func (h *Handlers) Hotels(c *gin.Context) {
	h.report(c, "hotels", model.RecordOperational, func(ds *model.Dataset, q query) any {
		return kpi.ByHotel(ds.Operational, q.filter)
	})
}

// Membership 会员结构
// GET /api/sources/:kind/membership
func (h *Handlers) Membership(c *gin.Context) {
	h.report(c, "membership", model.RecordMembership, func(ds *model.Dataset, q query) any {
		return kpi.MembershipMix(ds.Membership, q.filter, q.top)
	})
}

// Nationality 客源国排名
// GET /api/sources/:kind/nationality
func (h *Handlers) Nationality(c *gin.Context) {
	h.report(c, "nationality", model.RecordNationality, func(ds *model.Dataset, q query) any {
		return kpi.NationalityRanking(ds.Nationality, q.filter, q.top)
	})
}

// Export 导出报表工作簿
// GET /api/sources/:kind/export
func (h *Handlers) Export(c *gin.Context) {
	q, err := h.parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, ok := h.load(c, q)
	if !ok {
		return
	}
	if res.Status != ingest.StatusOK {
		c.JSON(http.StatusOK, ReportResponse{Empty: true, Status: res.Status, Diagnostics: res.Diagnostics, Filter: q.filter})
		return
	}
	if q.filter.Year == 0 {
		q.filter.Year = latestYear(res.Dataset)
	}

	file, err := h.exporter.Export(res.Dataset, q.filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("kpi-%s-%d.xlsx", res.Dataset.Kind, q.filter.Year)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		h.logger.Warn("write export failed", zap.Error(err))
	}
}

// Reload 使缓存失效；未指定 path 时清空全部
// POST /api/sources/reload
func (h *Handlers) Reload(c *gin.Context) {
	var body struct {
		Path string `json:"path"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
	}
	path := strings.TrimSpace(body.Path)
	if path == "" {
		path = strings.TrimSpace(c.Query("path"))
	}

	if path == "" {
		h.ingest.ReloadAll()
		c.JSON(http.StatusOK, gin.H{"invalidated": true, "all": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path, "invalidated": h.ingest.Reload(path)})
}

// ListSources 已缓存的数据源
// GET /api/sources
func (h *Handlers) ListSources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.ingest.Cached()})
}

type reportFunc func(ds *model.Dataset, q query) any

// report 加载请求指定的数据源并渲染一个报表；need 限定报表可用的记录类型
func (h *Handlers) report(c *gin.Context, name string, need model.RecordKind, build reportFunc) {
	start := time.Now()
	defer func() { metrics.ObserveReport(name, time.Since(start)) }()

	q, err := h.parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if need != model.RecordUnknown {
		if q.req.Records != model.RecordUnknown && q.req.Records != need {
			c.JSON(http.StatusBadRequest, gin.H{"error": name + " requires " + string(need) + " records"})
			return
		}
		q.req.Records = need
	}

	res, ok := h.load(c, q)
	if !ok {
		return
	}

	resp := ReportResponse{
		Status:      res.Status,
		Cached:      res.Cached,
		Dataset:     res.Dataset,
		Diagnostics: res.Diagnostics,
	}
	if res.Status != ingest.StatusOK {
		resp.Empty = true
		resp.Filter = q.filter
		c.JSON(http.StatusOK, resp)
		return
	}

	if q.filter.Year == 0 {
		q.filter.Year = latestYear(res.Dataset)
	}
	resp.Filter = q.filter
	resp.Report = build(res.Dataset, q)
	resp.Empty = reportEmpty(resp.Report)
	c.JSON(http.StatusOK, resp)
}

// load 执行加载，失败时自行写入错误响应
func (h *Handlers) load(c *gin.Context, q query) (*ingest.Result, bool) {
	res, err := h.ingest.Load(c.Request.Context(), q.req, nil)
	if err != nil {
		if errors.Is(err, model.ErrUnsupportedKind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
		if errors.Is(err, model.ErrSourceUnreadable) {
			h.logger.Warn("could not load source", zap.String("path", q.req.Path), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not load source", "detail": err.Error()})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	if res.Status == ingest.StatusDiscarded {
		// client went away
		c.Status(http.StatusNoContent)
		return nil, false
	}
	return res, true
}

func (h *Handlers) parseQuery(c *gin.Context) (query, error) {
	var q query

	records, err := model.ParseRecordKind(c.Param("kind"))
	if err != nil {
		return q, err
	}
	source, err := model.ParseSourceKind(c.Query("source"))
	if err != nil {
		return q, err
	}
	q.req = ingest.Request{
		Path:    strings.TrimSpace(c.Query("path")),
		Source:  source,
		Records: records,
		Sheet:   c.Query("sheet"),
	}
	if q.req.Path == "" {
		return q, errors.New("path is required")
	}

	mode, err := model.ParseMode(c.Query("mode"))
	if err != nil {
		return q, err
	}
	q.filter.Mode = mode
	q.filter.Hotel = canonicalHotel(c.Query("hotel"))

	ints := []struct {
		name string
		dst  *int
	}{
		{"year", &q.filter.Year},
		{"base", &q.filter.BaseYear},
		{"month", &q.filter.Month},
		{"quarter", &q.filter.Quarter},
		{"top", &q.top},
	}
	for _, p := range ints {
		v := strings.TrimSpace(c.Query(p.name))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, errors.New("invalid " + p.name + ": " + v)
		}
		*p.dst = n
	}
	if q.top <= 0 {
		q.top = h.topN
	}
	return q, q.filter.Validate()
}

func canonicalHotel(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, model.HotelAll) || strings.EqualFold(s, "todos") {
		return ""
	}
	return normalize.Hotel(s)
}

// latestYear 数据集中出现的最大年份
func latestYear(ds *model.Dataset) int {
	year := 0
	for _, r := range ds.Operational {
		year = max(year, r.Date.Year())
	}
	for _, r := range ds.Membership {
		year = max(year, r.Year)
	}
	for _, r := range ds.Nationality {
		year = max(year, r.Year)
	}
	return year
}

// reportEmpty 报表在当前筛选下是否无数据
func reportEmpty(report any) bool {
	switch r := report.(type) {
	case nil:
		return true
	case model.Comparison:
		return r.Current.Days == 0
	case model.MonthlySeries:
		for _, m := range r.Months {
			if m.HasCurrent {
				return false
			}
		}
		return true
	case []model.WeekdayEntry:
		for _, e := range r {
			if e.Days > 0 {
				return false
			}
		}
		return true
	case []model.HotelEntry:
		return len(r) == 0
	case model.MembershipMix:
		return len(r.Tiers) == 0
	case model.NationalityReport:
		return len(r.Countries) == 0
	}
	return false
}
