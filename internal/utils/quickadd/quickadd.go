// Package quickadd parses the inline task creation syntax, the text shorthand
// used to create tasks in one line:
//
//	schedm add "Oxygen maintenance @1001 tomorrow 9:30-11 !urgent #5E81AC"
//
// Tokens: "@person" assigns, a date ("2026-09-01", "today", "tomorrow")
// schedules, "start-end" sets the hour span, tokens starting with "!" mark
// urgency and "#RRGGBB" picks a color. Everything else becomes the title.
package quickadd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Spec is the parsed result of a quick-add input. Nil/empty fields were not
// present in the input.
type Spec struct {
	Title    string
	Person   string
	Date     *time.Time
	Start    *float64
	Duration *float64
	Urgent   bool
	Color    string
}

var (
	dateRegexp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	spanRegexp = regexp.MustCompile(`^(\d{1,2}(?::\d{2}|\.\d+)?)-(\d{1,2}(?::\d{2}|\.\d+)?)$`)
	hexRegexp  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Parse parses a quick-add input line. now anchors the relative dates
// ("today", "tomorrow").
func Parse(input string, now time.Time) (*Spec, error) {
	spec := &Spec{}
	var titleWords []string

	for _, token := range strings.Fields(input) {
		switch {
		case strings.HasPrefix(token, "@") && len(token) > 1:
			if spec.Person != "" {
				return nil, fmt.Errorf("person assigned twice (%q and @%s)", token, spec.Person)
			}
			spec.Person = token[1:]

		case strings.HasPrefix(token, "!"):
			spec.Urgent = true

		case hexRegexp.MatchString(token):
			spec.Color = strings.ToUpper(token)

		case token == "today" || token == "tomorrow":
			day := day(now)
			if token == "tomorrow" {
				day = day.AddDate(0, 0, 1)
			}
			spec.Date = &day

		case dateRegexp.MatchString(token):
			date, err := time.ParseInLocation("2006-01-02", token, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("invalid date %q: %w", token, err)
			}
			spec.Date = &date

		case spanRegexp.MatchString(token):
			start, duration, err := parseSpan(token)
			if err != nil {
				return nil, err
			}
			spec.Start = &start
			spec.Duration = &duration

		default:
			titleWords = append(titleWords, token)
		}
	}

	spec.Title = strings.Join(titleWords, " ")
	if spec.Title == "" {
		return nil, fmt.Errorf("input has no title")
	}

	return spec, nil
}

func parseSpan(token string) (start, duration float64, err error) {
	m := spanRegexp.FindStringSubmatch(token)

	start, err = parseHour(m[1])
	if err != nil {
		return 0, 0, err
	}
	end, err := parseHour(m[2])
	if err != nil {
		return 0, 0, err
	}
	if end <= start {
		return 0, 0, fmt.Errorf("hour span %q ends before it starts", token)
	}

	return start, end - start, nil
}

func parseHour(s string) (float64, error) {
	if h, m, ok := strings.Cut(s, ":"); ok {
		hours, err := strconv.Atoi(h)
		if err != nil {
			return 0, fmt.Errorf("invalid hour %q: %w", s, err)
		}
		minutes, err := strconv.Atoi(m)
		if err != nil || minutes >= 60 {
			return 0, fmt.Errorf("invalid minutes in %q", s)
		}
		return float64(hours) + float64(minutes)/60, nil
	}

	hour, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hour %q: %w", s, err)
	}
	return hour, nil
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
