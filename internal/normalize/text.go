// Package normalize 将原始单元格值转为类型化的值
// 所有函数都是全函数：错误输入返回零值，不 panic 也不返回错误
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var spaceRun = regexp.MustCompile(`\s+`)

// StripAccents removes combining marks ("Año" -> "Ano", "País" -> "Pais").
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Fold 去首尾空白、合并空白、转大写并去掉重音
func Fold(s string) string {
	s = strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
	return strings.ToUpper(StripAccents(s))
}

// Text 单元格转为去空白的字符串
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format("2006-01-02")
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// Blank 单元格是否无内容
func Blank(v any) bool {
	return Text(v) == ""
}

var yearToken = regexp.MustCompile(`(?:^|\D)(20\d{2})(?:\D|$)`)

// YearFromName 从表名或文件名中提取 20xx 年份，没有时返回 0
func YearFromName(name string) int {
	m := yearToken.FindStringSubmatch(name)
	if len(m) < 2 {
		return 0
	}
	y, _ := strconv.Atoi(m[1])
	return y
}
