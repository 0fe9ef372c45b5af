package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/its-serah/SheRages/internal/engine"
)

// BuildReminderICS builds an iCalendar file for the configured practice
// reminder so it can be imported into any calendar app. The event starts a
// few minutes out and recurs per the reminder frequency.
func BuildReminderICS(freq engine.ReminderFrequency, now time.Time) (string, error) {
	rrule := ""
	switch freq {
	case engine.ReminderDaily:
		rrule = "FREQ=DAILY"
	case engine.ReminderWeekly:
		rrule = "FREQ=WEEKLY;BYDAY=MO"
	default:
		return "", fmt.Errorf("reminder frequency %q has no calendar schedule", freq)
	}

	start := now.UTC().Add(5 * time.Minute)
	end := start.Add(15 * time.Minute)
	uid := fmt.Sprintf("reminder-%s-%d@sherages", freq, now.UnixNano())

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//SheRages//Practice Reminder//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + escapeICSText(uid),
		"DTSTAMP:" + now.UTC().Format(icsStampLayout),
		"SUMMARY:" + escapeICSText("SheRages practice session"),
		"DESCRIPTION:" + escapeICSText("Play a self-advocacy scenario to keep your streak going."),
		"DTSTART:" + start.Format(icsStampLayout),
		"DTEND:" + end.Format(icsStampLayout),
		"RRULE:" + rrule,
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}
	return strings.Join(lines, "\r\n"), nil
}

const icsStampLayout = "20060102T150405Z"

func escapeICSText(s string) string {
	repl := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
		"\r", "\\n",
	)
	return repl.Replace(s)
}
