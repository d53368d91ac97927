package lead

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dollarAmountRe = regexp.MustCompile(`(?i)\$\s*(\d+(?:[.,]\d+)*)\s*(k|thousand|m|million)?\b`)
	bareAmountRe   = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(k|thousand)\b`)
	usdAmountRe    = regexp.MustCompile(`(?i)\b(\d+(?:[.,]\d+)*)\s*usd\b`)
	durationRe     = regexp.MustCompile(`(?i)\b(\d+)(?:\s*(?:-|to)\s*(\d+))?\s*(day|week|month|year)s?\b`)
)

// hasMonetaryCue reports a currency sign or an amount such as "50k",
// "20 thousand" or "40000 usd".
func hasMonetaryCue(lower string) bool {
	return strings.Contains(lower, "$") ||
		strings.Contains(lower, "thousand") ||
		bareAmountRe.MatchString(lower) ||
		usdAmountRe.MatchString(lower)
}

// hasDurationCue reports an explicit timeline word or a span of
// days, weeks, months or years.
func hasDurationCue(lower string) bool {
	return strings.Contains(lower, "timeline") ||
		strings.Contains(lower, "deadline") ||
		durationRe.MatchString(lower)
}

// parseAmount returns the first budget amount in text, in dollars.
func parseAmount(text string) (float64, bool) {
	if m := dollarAmountRe.FindStringSubmatch(text); m != nil {
		return scaleAmount(m[1], m[2])
	}
	if m := bareAmountRe.FindStringSubmatch(text); m != nil {
		return scaleAmount(m[1], m[2])
	}
	if m := usdAmountRe.FindStringSubmatch(text); m != nil {
		return scaleAmount(m[1], "")
	}
	return 0, false
}

func scaleAmount(number, unit string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(number, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	switch strings.ToLower(unit) {
	case "k", "thousand":
		v *= 1_000
	case "m", "million":
		v *= 1_000_000
	}
	return v, true
}

type duration struct {
	text   string
	months float64
}

// parseDuration returns the first span in text, normalised ("3 months",
// "3-6 months") together with its upper bound in months.
func parseDuration(text string) (duration, bool) {
	m := durationRe.FindStringSubmatch(text)
	if m == nil {
		return duration{}, false
	}
	low, _ := strconv.Atoi(m[1])
	high := low
	if m[2] != "" {
		high, _ = strconv.Atoi(m[2])
	}
	unit := strings.ToLower(m[3])

	var perMonth float64
	switch unit {
	case "day":
		perMonth = 1.0 / 30
	case "week":
		perMonth = 12.0 / 52
	case "month":
		perMonth = 1
	case "year":
		perMonth = 12
	}

	span := strconv.Itoa(low)
	if high != low {
		span += "-" + strconv.Itoa(high)
	}
	if high != 1 {
		unit += "s"
	}
	return duration{text: span + " " + unit, months: float64(high) * perMonth}, true
}

func budgetRange(amount float64) string {
	switch {
	case amount < 25_000:
		return "Under $25,000"
	case amount < 50_000:
		return "$25,000 - $50,000"
	case amount < 100_000:
		return "$50,000 - $100,000"
	default:
		return "Over $100,000"
	}
}
