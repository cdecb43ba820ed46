package pricing

import (
	"regexp"
	"strings"

	"transfer/internal/modules/location"
)

const (
	DailyIncludedKm      = 100.0
	DailyIncludedMinutes = 600
)

// dailyKeywords are normalized phrases that mark a full-day / at-disposal booking.
var dailyKeywords = []string{
	"diaria",
	"diarias",
	"day use",
	"dia inteiro",
	"a disposicao",
	"periodo integral",
	"full day",
}

// durationPhrase matches explicit hour counts such as "8 horas" or "10hrs".
var durationPhrase = regexp.MustCompile(`(^| )\d{1,2} ?(horas|hora|hrs)( |$)`)

// IsDailyRequest reports whether an address carries a daily-rate marker.
func IsDailyRequest(address string) bool {
	text := location.NormalizeAddress(address)
	if text == "" {
		return false
	}
	padded := " " + text + " "
	for _, kw := range dailyKeywords {
		if strings.Contains(padded, " "+kw+" ") {
			return true
		}
	}
	return durationPhrase.MatchString(text)
}
