package normalize

import (
	"strings"
	"time"
)

// Weekdays 星期标签，周一在前
var Weekdays = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

var weekdayKeys = map[string]int{
	"LUNES": 0, "LUN": 0, "MONDAY": 0, "MON": 0,
	"MARTES": 1, "MAR": 1, "TUESDAY": 1, "TUE": 1,
	"MIERCOLES": 2, "MIE": 2, "WEDNESDAY": 2, "WED": 2,
	"JUEVES": 3, "JUE": 3, "THURSDAY": 3, "THU": 3,
	"VIERNES": 4, "VIE": 4, "FRIDAY": 4, "FRI": 4,
	"SABADO": 5, "SAB": 5, "SATURDAY": 5, "SAT": 5,
	"DOMINGO": 6, "DOM": 6, "SUNDAY": 6, "SUN": 6,
}

// Weekday 将西语或英语星期名（带不带重音均可）映射为规范标签；无法识别返回空串
func Weekday(raw string) string {
	key := strings.TrimSuffix(Fold(raw), ".")
	if i, ok := weekdayKeys[key]; ok {
		return Weekdays[i]
	}
	return ""
}

// WeekdayOf 日期对应的规范标签
func WeekdayOf(t time.Time) string {
	return Weekdays[(int(t.Weekday())+6)%7]
}

// WeekdayIndex 规范标签从周一起的位置，未知返回 -1
func WeekdayIndex(label string) int {
	if i, ok := weekdayKeys[Fold(label)]; ok {
		return i
	}
	return -1
}
