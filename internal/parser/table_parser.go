package parser

import (
	"github.com/emiranda028/hoteles-sub000/internal/model"
	"github.com/emiranda028/hoteles-sub000/internal/reader"
)

// ParseTable 定位表头，按 kind 解析并为每个数据行构建一条记录
// 被拒绝的行只收集不中断；整行空白的行直接跳过，不计数
func ParseTable(kind model.RecordKind, table *reader.Table, headerScan int) *Outcome {
	out := &Outcome{
		TableName: table.Name,
		Kind:      kind,
		HeaderRow: DetectHeaderRow(table.Rows, headerScan),
	}
	if out.HeaderRow < 0 {
		return out
	}
	out.Mapping = Resolve(rowTexts(table.Rows[out.HeaderRow]), FieldsFor(kind))

	rows := table.Rows[out.HeaderRow+1:]
	first := out.HeaderRow + 2 // 1-based number of rows[0]

	switch kind {
	case model.RecordOperational:
		b := NewOperationalBuilder(out.Mapping, table.Name)
		for i, row := range rows {
			if blankRow(row) {
				continue
			}
			rec, rej := b.Build(first+i, row)
			if rej != nil {
				out.Rejections = append(out.Rejections, *rej)
				continue
			}
			out.Operational = append(out.Operational, rec)
		}
	case model.RecordMembership:
		b := NewMembershipBuilder(out.Mapping, table.Name)
		for i, row := range rows {
			if blankRow(row) {
				continue
			}
			rec, rej := b.Build(first+i, row)
			if rej != nil {
				out.Rejections = append(out.Rejections, *rej)
				continue
			}
			out.Membership = append(out.Membership, rec)
		}
	case model.RecordNationality:
		b := NewNationalityBuilder(out.Mapping)
		for i, row := range rows {
			if blankRow(row) {
				continue
			}
			rec, rej := b.Build(first+i, row)
			if rej != nil {
				out.Rejections = append(out.Rejections, *rej)
				continue
			}
			out.Nationality = append(out.Nationality, rec)
		}
	}
	return out
}
