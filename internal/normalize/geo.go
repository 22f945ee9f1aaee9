package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// ContinentNoData 大洲单元格为空时返回
	ContinentNoData = "Sin dato"
	// ContinentUnknown 无法推断大洲的国家
	ContinentUnknown = "Unknown"
)

var continentRules = []struct {
	name     string
	variants []string
}{
	{"América", []string{"AMERICA", "AMERICAS", "LATAM"}},
	{"Europa", []string{"EUROPA", "EUROPE"}},
	{"Asia", []string{"ASIA"}},
	{"África", []string{"AFRICA"}},
	{"Oceanía", []string{"OCEANIA", "AUSTRALIA"}},
}

// Continent 规范大洲名称；空输入返回 "Sin dato"，无法匹配时原样去空白返回
func Continent(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ContinentNoData
	}
	key := Fold(s)
	for _, rule := range continentRules {
		for _, v := range rule.variants {
			if strings.Contains(key, v) {
				return rule.name
			}
		}
	}
	return s
}

// Country 国家名的展示形式（"ESTADOS  UNIDOS" -> "Estados Unidos"）
func Country(raw string) string {
	s := strings.TrimSpace(spaceRun.ReplaceAllString(raw, " "))
	if s == "" {
		return ""
	}
	return cases.Title(language.Spanish).String(strings.ToLower(s))
}

var countryContinent = map[string]string{
	"ARGENTINA": "América", "BRASIL": "América", "BRAZIL": "América", "CHILE": "América",
	"URUGUAY": "América", "PARAGUAY": "América", "BOLIVIA": "América", "PERU": "América",
	"COLOMBIA": "América", "VENEZUELA": "América", "ECUADOR": "América", "MEXICO": "América",
	"ESTADOS UNIDOS": "América", "EEUU": "América", "USA": "América", "UNITED STATES": "América",
	"CANADA": "América", "CUBA": "América", "COSTA RICA": "América", "PANAMA": "América",
	"ESPANA": "Europa", "SPAIN": "Europa", "FRANCIA": "Europa", "FRANCE": "Europa",
	"ITALIA": "Europa", "ITALY": "Europa", "ALEMANIA": "Europa", "GERMANY": "Europa",
	"REINO UNIDO": "Europa", "UNITED KINGDOM": "Europa", "INGLATERRA": "Europa",
	"PORTUGAL": "Europa", "PAISES BAJOS": "Europa", "HOLANDA": "Europa", "NETHERLANDS": "Europa",
	"SUIZA": "Europa", "SWITZERLAND": "Europa", "BELGICA": "Europa", "AUSTRIA": "Europa",
	"SUECIA": "Europa", "NORUEGA": "Europa", "DINAMARCA": "Europa", "IRLANDA": "Europa",
	"RUSIA": "Europa", "POLONIA": "Europa",
	"CHINA": "Asia", "JAPON": "Asia", "JAPAN": "Asia", "INDIA": "Asia", "COREA DEL SUR": "Asia",
	"COREA": "Asia", "ISRAEL": "Asia", "EMIRATOS ARABES UNIDOS": "Asia", "TURQUIA": "Asia",
	"SUDAFRICA": "África", "SOUTH AFRICA": "África", "EGIPTO": "África", "MARRUECOS": "África",
	"NIGERIA": "África",
	"AUSTRALIA": "Oceanía", "NUEVA ZELANDA": "Oceanía", "NEW ZEALAND": "Oceanía",
}

// ContinentOf 查询国家所属大洲，不在表中时返回 "Unknown"
func ContinentOf(country string) string {
	if c, ok := countryContinent[Fold(country)]; ok {
		return c
	}
	return ContinentUnknown
}
