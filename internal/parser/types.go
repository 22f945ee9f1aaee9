package parser

import "github.com/emiranda028/hoteles-sub000/internal/model"

// Field 规范字段及其同义列名（按优先级排序）
type Field struct {
	Name     string
	Synonyms []string
	Required bool
}

// Mapping 列名解析结果
type Mapping struct {
	Columns    map[string]int // canonical field -> column index
	Headers    []string       // source header cells as read
	Unresolved []string       // fields with no matching column, in declaration order
}

// Index 返回规范字段所在列
func (m Mapping) Index(field string) (int, bool) {
	idx, ok := m.Columns[field]
	return idx, ok
}

// Has 字段是否已解析到某列
func (m Mapping) Has(field string) bool {
	_, ok := m.Columns[field]
	return ok
}

// Named 返回规范字段 -> 原始表头文本
func (m Mapping) Named() map[string]string {
	out := make(map[string]string, len(m.Columns))
	for field, idx := range m.Columns {
		if idx < len(m.Headers) {
			out[field] = m.Headers[idx]
		}
	}
	return out
}

// Reason 行被丢弃的原因
type Reason string

const (
	ReasonMissingDate     Reason = "missing_date"
	ReasonMissingHotel    Reason = "missing_hotel"
	ReasonMissingTier     Reason = "missing_tier"
	ReasonMissingCountry  Reason = "missing_country"
	ReasonUnresolvedField Reason = "unresolved_field"
)

// Rejection 被丢弃行的结构化原因
type Rejection struct {
	Row    int    `json:"row"` // 1-based source row
	Reason Reason `json:"reason"`
	Field  string `json:"field"`
}

// Recognition 工作表识别结果
type Recognition struct {
	TableName  string           `json:"tableName"`
	Kind       model.RecordKind `json:"kind"`
	Confidence float64          `json:"confidence"` // 0-1
	HeaderRow  int              `json:"headerRow"`
	Mapping    Mapping          `json:"-"`
}

// Outcome 单表解析结果
type Outcome struct {
	TableName   string
	Kind        model.RecordKind
	HeaderRow   int
	Mapping     Mapping
	Operational []model.OperationalDay
	Membership  []model.Membership
	Nationality []model.Nationality
	Rejections  []Rejection
}

// Accepted 返回接受的记录数
func (o *Outcome) Accepted() int {
	return len(o.Operational) + len(o.Membership) + len(o.Nationality)
}

// RejectedByReason 按原因统计被拒绝的行
func (o *Outcome) RejectedByReason() map[string]int {
	out := make(map[string]int)
	for _, r := range o.Rejections {
		out[string(r.Reason)]++
	}
	return out
}
