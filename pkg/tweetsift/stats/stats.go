// Package stats holds small distribution helpers shared by the
// feasibility analyzers and the filtering pipeline.
package stats

import (
	"sort"
	"time"

	"github.com/civiclens/tweetsift/pkg/tweetsift/corpus"
)

// Quantile returns the q-th quantile of values using linear interpolation
// between order statistics, the same convention the bot filter's
// threshold was originally computed with. Values need not be sorted.
// An empty input returns 0; q is clamped to [0,1].
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// UserCounts tallies posts per author ID.
func UserCounts(c *corpus.Corpus) map[string]int {
	counts := make(map[string]int)
	for _, p := range c.Posts() {
		counts[p.UserID]++
	}
	return counts
}

// Activity summarizes per-user posting concentration.
type Activity struct {
	Posts         int
	Users         int
	TopUserShare  float64 // fraction of posts produced by the top 1% of users
	TopUsers      int     // how many users the top 1% is
	BusiestUserID string
	BusiestCount  int
}

// ActivityReport computes the power-law sanity check the exploratory
// analysis runs alongside the feasibility questions: how concentrated
// posting is in the most active accounts.
func ActivityReport(c *corpus.Corpus) Activity {
	counts := UserCounts(c)
	a := Activity{Posts: c.Len(), Users: len(counts)}
	if a.Posts == 0 || a.Users == 0 {
		return a
	}

	ordered := make([]struct {
		id string
		n  int
	}, 0, len(counts))
	for id, n := range counts {
		ordered = append(ordered, struct {
			id string
			n  int
		}{id, n})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].n != ordered[j].n {
			return ordered[i].n > ordered[j].n
		}
		return ordered[i].id < ordered[j].id
	})

	a.BusiestUserID = ordered[0].id
	a.BusiestCount = ordered[0].n

	a.TopUsers = len(ordered) / 100
	if a.TopUsers < 1 {
		a.TopUsers = 1
	}
	top := 0
	for _, u := range ordered[:a.TopUsers] {
		top += u.n
	}
	a.TopUserShare = float64(top) / float64(a.Posts)
	return a
}

// DayVolume is a per-day post count.
type DayVolume struct {
	Day   time.Time
	Count int
}

// DailyVolume buckets posts by UTC day, ascending. Posts with a zero
// timestamp are skipped.
func DailyVolume(c *corpus.Corpus) []DayVolume {
	buckets := make(map[time.Time]int)
	for _, p := range c.Posts() {
		if p.CreatedAt.IsZero() {
			continue
		}
		day := p.CreatedAt.UTC().Truncate(24 * time.Hour)
		buckets[day]++
	}

	out := make([]DayVolume, 0, len(buckets))
	for day, n := range buckets {
		out = append(out, DayVolume{Day: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}
