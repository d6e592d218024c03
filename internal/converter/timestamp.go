package converter

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var timestampRe = regexp.MustCompile(`&lt;t:(-?\d{1,17})(?::([tTdDfFR]))?&gt;`)

// Go layouts for the platform's timestamp styles.
var timestampLayouts = map[string]string{
	"t": "15:04",
	"T": "15:04:05",
	"d": "02/01/2006",
	"D": "2 January 2006",
	"f": "2 January 2006 15:04",
	"F": "Monday, 2 January 2006 15:04",
}

// Timestamps renders <t:unix:style> markers as timestamp spans. The original
// marker is kept in raw-content so the reverse converter can recover it.
func (t *Transformer) Timestamps() {
	loc := t.config.Location()
	now := t.config.Clock()
	t.content = drainLogged(t.logger, t.content, timestampRe, func(g []string) string {
		secs, err := strconv.ParseInt(g[1], 10, 64)
		if err != nil {
			return g[0]
		}
		ts := time.Unix(secs, 0).In(loc)
		return fmt.Sprintf(`<span class="unix-timestamp" data-timestamp="%s" raw-content="%s">%s</span>`,
			ts.Format(timestampLayouts["F"]), g[0], FormatTimestamp(ts, g[2], now))
	})
}

// FormatTimestamp formats ts in one of the styles t, T, d, D, f, F or R.
// An empty or unknown style formats as f.
func FormatTimestamp(ts time.Time, style string, now time.Time) string {
	if style == "R" {
		return relativeTime(ts, now)
	}
	layout, ok := timestampLayouts[style]
	if !ok {
		layout = timestampLayouts["f"]
	}
	return ts.Format(layout)
}

var relativeUnits = []struct {
	name string
	span time.Duration
}{
	{"year", 365 * 24 * time.Hour},
	{"month", 30 * 24 * time.Hour},
	{"day", 24 * time.Hour},
	{"hour", time.Hour},
	{"minute", time.Minute},
	{"second", time.Second},
}

func relativeTime(ts, now time.Time) string {
	d := ts.Sub(now)
	future := d > 0
	if d < 0 {
		d = -d
	}
	if d < time.Second {
		return "now"
	}
	for _, u := range relativeUnits {
		if d < u.span {
			continue
		}
		n := int64(d / u.span)
		unit := u.name
		if n != 1 {
			unit += "s"
		}
		if future {
			return fmt.Sprintf("in %d %s", n, unit)
		}
		return fmt.Sprintf("%d %s ago", n, unit)
	}
	return "now"
}
