package normalize

import (
	"strings"

	"github.com/emiranda028/hoteles-sub000/internal/model"
)

// Hotel 将酒店原名映射为规范标识；未知名称转为大写，映射幂等
func Hotel(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "MARRIOTT"):
		return model.HotelMarriott
	case strings.Contains(s, "SHERATON") && (strings.Contains(s, "BCR") || strings.Contains(s, "BARILOCHE")):
		return model.HotelSheratonBCR
	case strings.Contains(s, "SHERATON") && (strings.Contains(s, "MDQ") || strings.Contains(s, "MAR DEL PLATA")):
		return model.HotelSheratonMDQ
	case strings.Contains(s, "MAITEI"):
		return model.HotelMaitei
	}
	return s
}

// KnownHotel s 是否为规范标识
func KnownHotel(s string) bool {
	switch s {
	case model.HotelMarriott, model.HotelSheratonBCR, model.HotelSheratonMDQ, model.HotelMaitei:
		return true
	}
	return false
}
