package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// 表格日期序列号的第 0 天
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// 不大于该值的序列号按普通数字处理，不当作日期
const serialThreshold = 1000

var (
	dmyPattern     = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4}|\d{2})$`)
	serialPattern  = regexp.MustCompile(`^\d{5}(\.\d+)?$`)
	isoLayouts     = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04:05.000"}
	genericLayouts = []string{
		"2006/01/02",
		"2006/1/2",
		"2006-01-02 15:04:05",
		"02.01.2006",
		"2.1.2006",
		"Jan 2, 2006",
		"January 2, 2006",
		"2 Jan 2006",
		"2 January 2006",
		"Mon, 02 Jan 2006",
		"Mon Jan 2 2006",
		"Jan 2006",
		"January 2006",
		"2006-01",
		"01/2006",
		"1/2006",
		"2006",
	}
)

// Date 单元格转为日历日期（UTC 零点）；找不到可用值时第二个返回值为 false
func Date(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		if x.IsZero() {
			return time.Time{}, false
		}
		return dateOnly(x), true
	case float64:
		return fromSerial(x)
	case int:
		return fromSerial(float64(x))
	case string:
		return parseDateString(x)
	}
	return time.Time{}, false
}

func fromSerial(n float64) (time.Time, bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= serialThreshold {
		return time.Time{}, false
	}
	days := int(math.Floor(n))
	return serialEpoch.AddDate(0, 0, days), true
}

func parseDateString(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	if serialPattern.MatchString(s) {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return fromSerial(n)
		}
	}

	token := strings.Fields(s)[0]
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return dateOnly(t), true
		}
	}
	if t, ok := parseDMY(token); ok {
		return t, true
	}
	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), true
		}
	}
	return time.Time{}, false
}

// parseDMY 读取 D/M/Y 或 D-M-Y，年份 2 位或 4 位（2 位视为 20YY）
func parseDMY(s string) (time.Time, bool) {
	m := dmyPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if len(m[3]) == 2 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var monthNames = map[string]int{
	"ENERO": 1, "JANUARY": 1, "ENE": 1, "JAN": 1,
	"FEBRERO": 2, "FEBRUARY": 2, "FEB": 2,
	"MARZO": 3, "MARCH": 3, "MAR": 3,
	"ABRIL": 4, "APRIL": 4, "ABR": 4, "APR": 4,
	"MAYO": 5, "MAY": 5,
	"JUNIO": 6, "JUNE": 6, "JUN": 6,
	"JULIO": 7, "JULY": 7, "JUL": 7,
	"AGOSTO": 8, "AUGUST": 8, "AGO": 8, "AUG": 8,
	"SEPTIEMBRE": 9, "SETIEMBRE": 9, "SEPTEMBER": 9, "SEP": 9, "SET": 9, "SEPT": 9,
	"OCTUBRE": 10, "OCTOBER": 10, "OCT": 10,
	"NOVIEMBRE": 11, "NOVEMBER": 11, "NOV": 11,
	"DICIEMBRE": 12, "DECEMBER": 12, "DIC": 12, "DEC": 12,
}

// Month 读取月份数字（1-12）或西语、英语月份名；没有时返回 0
func Month(v any) int {
	if s, ok := v.(string); ok {
		key := Fold(s)
		if m, ok := monthNames[key]; ok {
			return m
		}
		if f := strings.Fields(key); len(f) > 0 {
			if m, ok := monthNames[strings.TrimSuffix(f[0], ".")]; ok {
				return m
			}
		}
	}
	n := Number(v)
	if n >= 1 && n <= 12 && n == math.Trunc(n) {
		return int(n)
	}
	return 0
}

// Year 从单元格读取合理的年份；没有时返回 0
func Year(v any) int {
	if t, ok := v.(time.Time); ok && !t.IsZero() {
		return t.Year()
	}
	if y, ok := PlainYear(v); ok {
		return y
	}
	if s, ok := v.(string); ok {
		return YearFromName(s)
	}
	return 0
}

// PlainYear 纯数字年份（2025 或 "2025"），不当作日期序列号
func PlainYear(v any) (int, bool) {
	n := Number(v)
	if n >= 1900 && n <= 2999 && n == math.Trunc(n) {
		return int(n), true
	}
	return 0, false
}
