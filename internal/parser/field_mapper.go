package parser

import "strings"

// Resolve 将表头映射到规范字段
// 每个字段先用同义词精确匹配规范化后的表头；仍未解析的字段再做包含匹配（表头包含同义词），
// 跳过已被占用的列，因此精确匹配总是优先于其他位置的宽松匹配
func Resolve(headers []string, fields []Field) Mapping {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}

	m := Mapping{
		Columns: make(map[string]int, len(fields)),
		Headers: headers,
	}
	claimed := make(map[int]bool)

	for _, f := range fields {
		if idx := findColumn(normalized, f.Synonyms, claimed, exactMatch); idx >= 0 {
			m.Columns[f.Name] = idx
			claimed[idx] = true
		}
	}
	for _, f := range fields {
		if m.Has(f.Name) {
			continue
		}
		if idx := findColumn(normalized, f.Synonyms, claimed, containsMatch); idx >= 0 {
			m.Columns[f.Name] = idx
			claimed[idx] = true
		}
	}
	for _, f := range fields {
		if !m.Has(f.Name) {
			m.Unresolved = append(m.Unresolved, f.Name)
		}
	}
	return m
}

type matchFunc func(header, synonym string) bool

func exactMatch(header, synonym string) bool {
	return header == synonym
}

func containsMatch(header, synonym string) bool {
	return strings.Contains(header, synonym)
}

// findColumn 按优先级遍历同义词，返回第一个匹配且未被占用的列，没有时返回 -1
func findColumn(headers, synonyms []string, claimed map[int]bool, match matchFunc) int {
	for _, syn := range synonyms {
		syn = NormalizeHeader(syn)
		if syn == "" {
			continue
		}
		for idx, h := range headers {
			if claimed[idx] {
				continue
			}
			if match(h, syn) {
				return idx
			}
		}
	}
	return -1
}
