package pet

import (
	"time"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
)

// Stats decay only while the clock is inside the daily active window
// [08:00, 20:00). A stored stat is the value at its own care timestamp;
// the current value is derived on read, never persisted, so state
// survives restarts without a background ticker.

// activeDuration returns the portion of [from, to] that falls inside
// the daily active window, in the timestamps' locations.
func activeDuration(from, to time.Time) time.Duration {
	if !to.After(from) {
		return 0
	}
	var total time.Duration
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for day.Before(to) {
		start := day.Add(domain.ActiveHourStart * time.Hour)
		end := day.Add(domain.ActiveHourEnd * time.Hour)
		if from.After(start) {
			start = from
		}
		if to.Before(end) {
			end = to
		}
		if end.After(start) {
			total += end.Sub(start)
		}
		day = day.AddDate(0, 0, 1)
	}
	return total
}

// ActiveHours returns the whole active hours elapsed between from and
// to. Partial hours do not count.
func ActiveHours(from, to time.Time) int {
	return int(activeDuration(from, to) / time.Hour)
}

// DecayedStat returns a stat after one point of decay per active hour
// since its care timestamp, clamped at zero.
func DecayedStat(value int, since, now time.Time) int {
	v := value - ActiveHours(since, now)
	if v < 0 {
		return 0
	}
	return v
}

// Decayed returns a copy of the pet with all three stats decayed to
// now. A ran-away pet is frozen and returned as stored.
func Decayed(p *domain.Pet, now time.Time) *domain.Pet {
	out := *p
	if p.HasRunAway() {
		return &out
	}
	out.Hunger = DecayedStat(p.Hunger, p.LastFedAt, now)
	out.Thirst = DecayedStat(p.Thirst, p.LastWateredAt, now)
	out.Happiness = DecayedStat(p.Happiness, p.LastPlayedAt, now)
	return &out
}

// LastCaredAt returns the most recent care moment, counting creation
// as the first care.
func LastCaredAt(p *domain.Pet) time.Time {
	latest := p.CreatedAt
	for _, t := range []time.Time{p.LastFedAt, p.LastWateredAt, p.LastPlayedAt} {
		if t.After(latest) {
			latest = t
		}
	}
	return latest
}

// ShouldRunAway reports whether neglect has crossed the abandonment
// horizon.
func ShouldRunAway(p *domain.Pet, now time.Time) bool {
	if p.HasRunAway() {
		return false
	}
	return now.Sub(LastCaredAt(p)) >= domain.AbandonAfterDays*24*time.Hour
}
