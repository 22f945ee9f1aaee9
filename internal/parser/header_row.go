package parser

import (
	"github.com/emiranda028/hoteles-sub000/internal/model"
	"github.com/emiranda028/hoteles-sub000/internal/normalize"
)

// DefaultHeaderScan 表头最多向下扫描的行数
const DefaultHeaderScan = 12

// 表头行至少需要的非空单元格数
const minHeaderCells = 3

// DetectHeaderRow 返回前 maxScan 行中第一个至少有三个非空单元格的行号，没有时返回 -1
func DetectHeaderRow(rows [][]model.Cell, maxScan int) int {
	if maxScan <= 0 {
		maxScan = DefaultHeaderScan
	}
	for i := 0; i < len(rows) && i < maxScan; i++ {
		n := 0
		for _, c := range rows[i] {
			if !normalize.Blank(c) {
				n++
			}
		}
		if n >= minHeaderCells {
			return i
		}
	}
	return -1
}
