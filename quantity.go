package tme

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	digitRunRE = regexp.MustCompile(`[\d\s]+`)
	membersRE  = regexp.MustCompile(`([\d\s]+)\s+members?`)
	onlineRE   = regexp.MustCompile(`([\d\s]+)\s+online`)
)

// ParseCount extracts the first run of digits (possibly grouped with
// whitespace, e.g. "363 520 subscribers") and parses it as a base-10
// integer. It is total: inputs without digits yield 0.
func ParseCount(text string) int {
	m := digitRunRE.FindString(text)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(stripSpace(m))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseAbbrevCount parses a display count that may use K/M shorthand
// ("1.47K" -> 1470, "2M" -> 2000000, "150 000" -> 150000). Suffixes are
// uppercase only and K is checked before M; a string containing both
// scales by K. It is total: malformed input yields 0.
func ParseAbbrevCount(text string) int {
	cleaned := stripSpace(text)
	if cleaned == "" {
		return 0
	}

	if strings.Contains(cleaned, "K") {
		return scaleBy(cleaned, "K", 1_000)
	}
	if strings.Contains(cleaned, "M") {
		return scaleBy(cleaned, "M", 1_000_000)
	}

	n, err := strconv.Atoi(cleaned)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseMemberCounts extracts the "N members, M online" pair from a group
// profile's extra-info line. Each value defaults to 0 when its pattern is
// absent.
func ParseMemberCounts(text string) (members, online int) {
	if m := membersRE.FindStringSubmatch(text); m != nil {
		members = ParseCount(m[1])
	}
	if m := onlineRE.FindStringSubmatch(text); m != nil {
		online = ParseCount(m[1])
	}
	return members, online
}

func scaleBy(cleaned, suffix string, factor float64) int {
	f, err := strconv.ParseFloat(strings.Replace(cleaned, suffix, "", 1), 64)
	if err != nil || f < 0 {
		return 0
	}
	return int(math.Round(f * factor))
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
