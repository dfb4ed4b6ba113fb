package intent

import (
	"strconv"
	"strings"
	"time"
)

// ParseWhen turns a spoken time phrase into a concrete timestamp.
// Accepted forms, in order: "in N minute(s)", "in N hour(s)", "at HH:MM".
// Anything else fails and no reminder is scheduled.
func ParseWhen(now time.Time, phrase string) (time.Time, bool) {
	phrase = strings.TrimSpace(strings.ToLower(phrase))

	switch {
	case strings.HasPrefix(phrase, "in "):
		rest := strings.TrimSpace(phrase[len("in "):])
		n, ok := gatherDigits(rest)
		if !ok {
			return time.Time{}, false
		}
		if strings.Contains(rest, "minute") {
			return now.Add(time.Duration(n) * time.Minute), true
		}
		if strings.Contains(rest, "hour") {
			return now.Add(time.Duration(n) * time.Hour), true
		}
		return time.Time{}, false

	case strings.HasPrefix(phrase, "at "):
		fields := strings.Fields(phrase[len("at "):])
		if len(fields) == 0 {
			return time.Time{}, false
		}
		hh, mm, ok := parseClock(fields[0])
		if !ok {
			return time.Time{}, false
		}
		t := time.Date(now.Year(), now.Month(), now.Day(), hh, mm, 0, 0, now.Location())
		if t.Before(now) {
			t = t.Add(24 * time.Hour)
		}
		return t, true
	}

	return time.Time{}, false
}

// gatherDigits concatenates every digit in the phrase: "1 0 minutes"
// reads as 10. Recognizers split spoken numbers like that often enough
// that the sloppy read is the useful one.
func gatherDigits(s string) (int, bool) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseClock(tok string) (hh, mm int, ok bool) {
	h, m, found := strings.Cut(tok, ":")
	if !found {
		return 0, 0, false
	}
	hh, err := strconv.Atoi(h)
	if err != nil || hh < 0 || hh > 23 {
		return 0, 0, false
	}
	mm, err = strconv.Atoi(m)
	if err != nil || mm < 0 || mm > 59 {
		return 0, 0, false
	}
	return hh, mm, true
}
