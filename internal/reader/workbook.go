package reader

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/emiranda028/hoteles-sub000/internal/model"
)

// ReadWorkbook 解码 xlsx 工作簿的所有工作表
// 单元格按原始值读取，日期单元格以序列号（float64）交给日期规范化；空单元格为 ""，每行补齐到表宽
func ReadWorkbook(data []byte) (*Book, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	book := &Book{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		book.Tables = append(book.Tables, Table{Name: name, Rows: toCells(rows)})
	}
	return book, nil
}

func toCells(rows [][]string) [][]model.Cell {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	out := make([][]model.Cell, len(rows))
	for i, r := range rows {
		row := make([]model.Cell, width)
		for j := range row {
			row[j] = ""
			if j < len(r) {
				row[j] = rawCell(r[j])
			}
		}
		out[i] = row
	}
	return out
}

// rawCell 数值单元格保留为 float64，其余为字符串
func rawCell(v string) model.Cell {
	if v == "" || strings.TrimSpace(v) != v {
		return v
	}
	if c := v[0]; !(c >= '0' && c <= '9') && c != '-' && c != '+' && c != '.' {
		return v
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return v
}
