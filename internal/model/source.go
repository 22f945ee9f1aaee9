package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// SourceKind 数据源格式
type SourceKind string

const (
	SourceUnknown   SourceKind = ""
	SourceDelimited SourceKind = "delimited"
	SourceWorkbook  SourceKind = "workbook"
)

// Cell 原始单元格值：string、float64 或 time.Time
type Cell = any

var (
	ErrSourceUnreadable = errors.New("source unreadable")
	ErrSourceEmpty      = errors.New("source empty")
	ErrUnsupportedKind  = errors.New("unsupported source kind")
	ErrSheetNotFound    = errors.New("sheet not found")
)

// SourceError 数据源读取失败，携带路径
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrSourceUnreadable, e.Path, e.Err)
}

func (e *SourceError) Unwrap() []error {
	return []error{ErrSourceUnreadable, e.Err}
}

// NewSourceError 将 err 包装为 path 的源不可读错误
func NewSourceError(path string, err error) error {
	if err == nil {
		return nil
	}
	var se *SourceError
	if errors.As(err, &se) {
		return err
	}
	return &SourceError{Path: path, Err: err}
}

// KindFromPath 由扩展名推断数据源格式
func KindFromPath(path string) (SourceKind, error) {
	ext := strings.ToLower(filepath.Ext(stripQuery(path)))
	switch ext {
	case ".csv", ".tsv", ".txt":
		return SourceDelimited, nil
	case ".xlsx", ".xlsm", ".xltx", ".xls":
		return SourceWorkbook, nil
	}
	return SourceUnknown, fmt.Errorf("%w: %q", ErrUnsupportedKind, ext)
}

func stripQuery(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		return path[:i]
	}
	return path
}

// ParseSourceKind 解析查询参数与配置中的格式名
func ParseSourceKind(s string) (SourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return SourceUnknown, nil
	case "csv", "tsv", "txt", "delimited":
		return SourceDelimited, nil
	case "xlsx", "xls", "excel", "workbook":
		return SourceWorkbook, nil
	}
	return SourceUnknown, fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
}

// RecordKind 记录类型
type RecordKind string

const (
	RecordUnknown     RecordKind = ""
	RecordOperational RecordKind = "operational"
	RecordMembership  RecordKind = "membership"
	RecordNationality RecordKind = "nationality"
)

// ParseRecordKind 将路由或查询参数映射为记录类型
func ParseRecordKind(s string) (RecordKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return RecordUnknown, nil
	case "operational", "daily", "history":
		return RecordOperational, nil
	case "membership", "memberships":
		return RecordMembership, nil
	case "nationality", "nationalities":
		return RecordNationality, nil
	}
	return RecordUnknown, fmt.Errorf("unknown record kind %q", s)
}
