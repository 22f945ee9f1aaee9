package reader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/emiranda028/hoteles-sub000/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadDelimited 解码逗号、分号或制表符分隔的文本；整行空白的行被丢弃，单元格都是字符串
func ReadDelimited(data []byte) (*Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		data = windows1252ToUTF8(data)
	}
	text := normalizeNewlines(string(data))

	delim := DetectDelimiter(firstNonBlankLine(text))

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	table := &Table{}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode delimited text: %w", err)
		}
		if blankRecord(rec) {
			continue
		}
		row := make([]model.Cell, len(rec))
		for i, v := range rec {
			row[i] = v
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// DetectDelimiter 选择 line 中出现最多的分隔符
// 相同时制表符优先于分号，分号优先于逗号；都没有时为逗号
func DetectDelimiter(line string) rune {
	best, bestN := ',', strings.Count(line, ",")
	if n := strings.Count(line, ";"); n > 0 && n >= bestN {
		best, bestN = ';', n
	}
	if n := strings.Count(line, "\t"); n > 0 && n >= bestN {
		best = '\t'
	}
	return best
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func firstNonBlankLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}

func blankRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// windows1252ToUTF8 handles exports saved by legacy PMS tools ("País", "Año").
func windows1252ToUTF8(b []byte) []byte {
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return b
	}
	return out
}

func tableNameFromPath(p string) string {
	base := path.Base(strings.ReplaceAll(p, "\\", "/"))
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
