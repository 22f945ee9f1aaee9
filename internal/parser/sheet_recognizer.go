package parser

import (
	"fmt"
	"sort"

	"github.com/emiranda028/hoteles-sub000/internal/model"
	"github.com/emiranda028/hoteles-sub000/internal/reader"
)

// 识别顺序，同时用于打破置信度平局
var recordKinds = []model.RecordKind{
	model.RecordOperational,
	model.RecordMembership,
	model.RecordNationality,
}

// SheetRecognizer 工作表类型识别器
type SheetRecognizer struct {
	headerScan int
}

// NewSheetRecognizer 创建识别器
func NewSheetRecognizer(headerScan int) *SheetRecognizer {
	if headerScan <= 0 {
		headerScan = DefaultHeaderScan
	}
	return &SheetRecognizer{headerScan: headerScan}
}

// Recognize 按一种记录类型为表格打分；kind 为 RecordUnknown 时尝试全部类型
// 置信度为已解析字段的占比；缺少必需字段时为 0
func (r *SheetRecognizer) Recognize(table *reader.Table, kind model.RecordKind) Recognition {
	headerRow := DetectHeaderRow(table.Rows, r.headerScan)
	if headerRow < 0 {
		return Recognition{TableName: table.Name, Kind: kind, HeaderRow: -1}
	}
	headers := rowTexts(table.Rows[headerRow])

	if kind != model.RecordUnknown {
		return r.score(table.Name, headers, headerRow, kind)
	}

	best := Recognition{TableName: table.Name, HeaderRow: headerRow, Mapping: Mapping{Headers: headers}}
	for _, k := range recordKinds {
		res := r.score(table.Name, headers, headerRow, k)
		if res.Confidence > best.Confidence {
			best = res
		}
	}
	return best
}

func (r *SheetRecognizer) score(tableName string, headers []string, headerRow int, kind model.RecordKind) Recognition {
	fields := FieldsFor(kind)
	m := Resolve(headers, fields)
	res := Recognition{
		TableName: tableName,
		Kind:      kind,
		HeaderRow: headerRow,
		Mapping:   m,
	}
	if len(fields) == 0 || !requiredResolved(kind, m, tableName) {
		return res
	}
	res.Confidence = float64(len(m.Columns)) / float64(len(fields))
	return res
}

// requiredResolved 以已知酒店命名的表可以代替酒店列
func requiredResolved(kind model.RecordKind, m Mapping, tableName string) bool {
	for _, f := range FieldsFor(kind) {
		if !f.Required || m.Has(f.Name) {
			continue
		}
		if f.Name == FieldHotel && hotelFromName(tableName) != "" {
			continue
		}
		return false
	}
	return true
}

type sheetCandidate struct {
	index int
	rec   Recognition
}

// SelectTable 选择要解析的表：显式选择器必须指向已存在的表
// 否则取置信度最高的表，相同时按来源顺序；都无法识别时使用第一张表
func (r *SheetRecognizer) SelectTable(book *reader.Book, kind model.RecordKind, selector string) (*reader.Table, Recognition, error) {
	if book == nil || len(book.Tables) == 0 {
		return nil, Recognition{}, model.ErrSourceEmpty
	}
	if selector != "" {
		t, ok := book.Table(selector)
		if !ok {
			return nil, Recognition{}, fmt.Errorf("%w: %q", model.ErrSheetNotFound, selector)
		}
		return t, r.Recognize(t, kind), nil
	}

	cands := make([]sheetCandidate, 0, len(book.Tables))
	for i := range book.Tables {
		cands = append(cands, sheetCandidate{index: i, rec: r.Recognize(&book.Tables[i], kind)})
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].rec.Confidence > cands[j].rec.Confidence
	})
	best := cands[0]
	if best.rec.Confidence == 0 {
		first := &book.Tables[0]
		return first, r.Recognize(first, kind), nil
	}
	return &book.Tables[best.index], best.rec, nil
}
