package model

import "time"

// Dataset 单个数据源解析后的全部记录（按来源行序）
type Dataset struct {
	ID          string            `json:"id"`
	Path        string            `json:"path"`
	Source      SourceKind        `json:"source"`
	Kind        RecordKind        `json:"kind"`
	Sheet       string            `json:"sheet"`
	Sheets      []string          `json:"sheets"`
	Headers     map[string]string `json:"headers"` // canonical field -> source header
	Unresolved  []string          `json:"unresolved"`
	HeaderRow   int               `json:"headerRow"`
	Accepted    int               `json:"accepted"`
	Rejected    map[string]int    `json:"rejected"`
	LoadedAt    time.Time         `json:"loadedAt"`
	Operational []OperationalDay  `json:"-"`
	Membership  []Membership      `json:"-"`
	Nationality []Nationality     `json:"-"`
}

// Len 返回记录数
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Operational) + len(d.Membership) + len(d.Nationality)
}

// RejectedTotal 返回被丢弃的行数
func (d *Dataset) RejectedTotal() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, c := range d.Rejected {
		n += c
	}
	return n
}
