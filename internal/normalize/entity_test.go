package normalize

import (
	"testing"
	"time"

	"github.com/emiranda028/hoteles-sub000/internal/model"
)

func TestHotel_Canonical(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Buenos Aires Marriott":        model.HotelMarriott,
		"sheraton bariloche":           model.HotelSheratonBCR,
		"Sheraton BCR":                 model.HotelSheratonBCR,
		"Sheraton Mar del Plata Hotel": model.HotelSheratonMDQ,
		"SHERATON MDQ":                 model.HotelSheratonMDQ,
		"Maitei Posadas":               model.HotelMaitei,
		"  hotel nuevo ":               "HOTEL NUEVO",
		"Sheraton Pilar":               "SHERATON PILAR",
	}
	for in, want := range cases {
		if got := Hotel(in); got != want {
			t.Fatalf("Hotel(%q) want=%q got=%q", in, want, got)
		}
	}
}

func TestHotel_Idempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "marriott", "Sheraton Bariloche", "sheraton mar del plata", "x", " Maitei ", "ñandú resort", "SHERATON"} {
		once := Hotel(in)
		if twice := Hotel(once); twice != once {
			t.Fatalf("Hotel not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestTier_Buckets(t *testing.T) {
	t.Parallel()

	cases := map[string]model.Tier{
		"(GLD) Gold":           model.TierGold,
		"(MRD) Member":         model.TierMember,
		"Platinum Elite":       model.TierPlatinum,
		"(AMB) Ambassador":     model.TierAmbassador,
		"titanium elite":       model.TierTitanium,
		"(SLR) Silver Elite":   model.TierSilver,
		"(PLT)":                model.TierPlatinum,
		"Membership sin nivel": model.TierOther,
		"":                     model.TierOther,
	}
	for in, want := range cases {
		if got := Tier(in); got != want {
			t.Fatalf("Tier(%q) want=%q got=%q", in, want, got)
		}
	}
	if !model.TierGold.Elite() || model.TierSilver.Elite() || model.TierOther.Elite() {
		t.Fatalf("unexpected elite buckets")
	}
}

func TestContinentAndCountry(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":             ContinentNoData,
		"  ":           ContinentNoData,
		"Sudamérica":   "América",
		"EUROPE":       "Europa",
		"africa":       "África",
		"Oceanía":      "Oceanía",
		"Antártida":    "Antártida",
		"asia pacific": "Asia",
	}
	for in, want := range cases {
		if got := Continent(in); got != want {
			t.Fatalf("Continent(%q) want=%q got=%q", in, want, got)
		}
	}

	if got := Country("  ESTADOS   UNIDOS "); got != "Estados Unidos" {
		t.Fatalf("Country want=%q got=%q", "Estados Unidos", got)
	}
	if got := ContinentOf("España"); got != "Europa" {
		t.Fatalf("ContinentOf(España) want=Europa got=%q", got)
	}
	if got := ContinentOf("Atlantida"); got != ContinentUnknown {
		t.Fatalf("ContinentOf(Atlantida) want=%q got=%q", ContinentUnknown, got)
	}
}

func TestWeekday(t *testing.T) {
	t.Parallel()

	if got := Weekday("miercoles"); got != "Miércoles" {
		t.Fatalf("Weekday(miercoles) got=%q", got)
	}
	if got := Weekday("SÁBADO"); got != "Sábado" {
		t.Fatalf("Weekday(SÁBADO) got=%q", got)
	}
	if got := Weekday("Wed"); got != "Miércoles" {
		t.Fatalf("Weekday(Wed) got=%q", got)
	}
	if got := WeekdayOf(time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)); got != "Miércoles" {
		t.Fatalf("WeekdayOf(2022-06-01) got=%q", got)
	}
	if got := WeekdayIndex("Domingo"); got != 6 {
		t.Fatalf("WeekdayIndex(Domingo) got=%d", got)
	}
}

func TestHistoryForecast(t *testing.T) {
	t.Parallel()

	if got := HistoryForecast("History"); got != model.HoFHistory {
		t.Fatalf("got=%v", got)
	}
	if got := HistoryForecast(" forecast "); got != model.HoFForecast {
		t.Fatalf("got=%v", got)
	}
	if got := HistoryForecast(""); got != model.HoFUnknown {
		t.Fatalf("got=%v", got)
	}
}
