package parser

import (
	"strings"

	"github.com/emiranda028/hoteles-sub000/internal/model"
	"github.com/emiranda028/hoteles-sub000/internal/normalize"
)

// NormalizeHeader 规范化列名：去空白、大写、去重音
func NormalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return normalize.Fold(name)
}

// rowTexts 将一行原始单元格转为去空白的字符串
func rowTexts(row []model.Cell) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = normalize.Text(c)
	}
	return out
}

// cellAt 返回已解析字段的单元格，缺失时为 nil
func cellAt(row []model.Cell, m Mapping, field string) model.Cell {
	idx, ok := m.Index(field)
	if !ok || idx >= len(row) {
		return nil
	}
	return row[idx]
}

func blankRow(row []model.Cell) bool {
	for _, c := range row {
		if !normalize.Blank(c) {
			return false
		}
	}
	return true
}
