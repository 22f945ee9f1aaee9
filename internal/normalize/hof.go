package normalize

import "github.com/emiranda028/hoteles-sub000/internal/model"

// HistoryForecast 读取经营记录行的 History/Forecast 标记
func HistoryForecast(v any) model.HistoryForecast {
	switch Fold(Text(v)) {
	case "HISTORY", "H", "HIST", "HISTORICO", "REAL", "ACTUAL":
		return model.HoFHistory
	case "FORECAST", "F", "FCST", "FC", "PRONOSTICO", "PROYECCION":
		return model.HoFForecast
	}
	return model.HoFUnknown
}
