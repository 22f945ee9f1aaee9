// Package reader 将分隔文本与电子表格工作簿解码为原始单元格网格
package reader

import (
	"fmt"

	"github.com/emiranda028/hoteles-sub000/internal/model"
)

// Table 一个工作表/文本表
type Table struct {
	Name string
	Rows [][]model.Cell
}

// Book 解析后的数据源，保持工作表顺序
type Book struct {
	Tables []Table
}

// Names 按来源顺序返回表名
func (b *Book) Names() []string {
	if b == nil {
		return nil
	}
	names := make([]string, 0, len(b.Tables))
	for _, t := range b.Tables {
		names = append(names, t.Name)
	}
	return names
}

// Table 按名称精确查找表
func (b *Book) Table(name string) (*Table, bool) {
	if b == nil {
		return nil, false
	}
	for i := range b.Tables {
		if b.Tables[i].Name == name {
			return &b.Tables[i], true
		}
	}
	return nil, false
}

// Read 按声明的格式解码 data；path 仅用于错误信息和单表来源的命名
func Read(path string, data []byte, kind model.SourceKind) (*Book, error) {
	switch kind {
	case model.SourceDelimited:
		t, err := ReadDelimited(data)
		if err != nil {
			return nil, model.NewSourceError(path, err)
		}
		t.Name = tableNameFromPath(path)
		return &Book{Tables: []Table{*t}}, nil
	case model.SourceWorkbook:
		b, err := ReadWorkbook(data)
		if err != nil {
			return nil, model.NewSourceError(path, err)
		}
		return b, nil
	}
	return nil, model.NewSourceError(path, fmt.Errorf("%w: %q", model.ErrUnsupportedKind, kind))
}
