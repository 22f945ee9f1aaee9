package normalize

import (
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// 金额前缀中的货币符号，长的在前
var currencyPrefixes = []string{"US$", "AR$", "USD", "ARS", "EUR", "BRL", "R$", "U$S", "$", "€"}

// Number 解析本地化不确定的金额："5.251.930,33" -> 5251930.33，"1,234.5" -> 1234.5
// 只有点号时视为小数点（"1.500" -> 1.5）；无法解析返回 0
func Number(v any) float64 {
	switch x := v.(type) {
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case string:
		return parseNumber(x)
	}
	return 0
}

func parseNumber(raw string) float64 {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	if s == "" {
		return 0
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	s = strings.TrimPrefix(s, "+")
	upper := strings.ToUpper(s)
	for _, p := range currencyPrefixes {
		if strings.HasPrefix(upper, p) {
			s = s[len(p):]
			break
		}
	}
	s = strings.TrimSuffix(s, "%")
	if strings.HasPrefix(s, "-") {
		neg = !neg
		s = s[1:]
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case hasComma:
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f := d.InexactFloat64()
	if neg {
		f = -f
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// fractionThreshold 区分 0-100 百分比与 0-1 小数；(1, 1.5] 区间本身有歧义，按小数处理
const fractionThreshold = 1.5

// Fraction 百分比转为 0-1 小数：n > 1.5 时为 n/100，否则为 n
func Fraction(v any) float64 {
	n := Number(v)
	if n > fractionThreshold {
		return n / 100
	}
	return n
}

// Count 解析非负整数数量，四舍五入（远离零）
func Count(v any) int {
	n := math.Round(Number(v))
	if n <= 0 {
		return 0
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// NonNegative 金额下限截断为 0
func NonNegative(v any) float64 {
	n := Number(v)
	if n < 0 {
		return 0
	}
	return n
}

// Clamp01 限制在 [0, 1]
func Clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
