// Package forensics re-examines a persisted bot subset to verify the
// filter removed automated accounts rather than merely loud humans.
package forensics

import (
	"fmt"
	"sort"

	"github.com/civiclens/tweetsift/pkg/tweetsift/corpus"
	"github.com/civiclens/tweetsift/pkg/tweetsift/stats"
)

const (
	// AutomationRate is the posts-per-day rate above which an account is
	// judged automated (10 per hour).
	AutomationRate = 144.0

	// minSpanDays floors the observed posting span so rate computation
	// cannot blow up on accounts whose posts land in one burst.
	minSpanDays = 0.1

	maxSources = 5
	maxSamples = 3
)

// SourceCount is one client/source label with its post count.
type SourceCount struct {
	Source string
	Count  int
}

// BotAudit is the forensic summary of one bots_removed artifact.
type BotAudit struct {
	File        string
	Posts       int
	Accounts    int
	TopAccount  string
	TopCount    int
	SpanDays    float64
	PostsPerDay float64
	Automated   bool
	TopSources  []SourceCount
	Samples     []string
}

// AuditBotFile loads a previously persisted bot subset and computes
// posting-speed and content diagnostics for its most prolific account.
// A missing file surfaces as the loader's wrapped os error; the caller
// reports absence and returns.
func AuditBotFile(path string) (*BotAudit, error) {
	c, err := corpus.Load(path, 0)
	if err != nil {
		return nil, fmt.Errorf("audit bot file: %w", err)
	}

	counts := stats.UserCounts(c)
	audit := &BotAudit{
		File:     path,
		Posts:    c.Len(),
		Accounts: len(counts),
	}
	if audit.Posts == 0 {
		return audit, nil
	}

	for id, n := range counts {
		if n > audit.TopCount || (n == audit.TopCount && id < audit.TopAccount) {
			audit.TopAccount = id
			audit.TopCount = n
		}
	}

	audit.SpanDays = postingSpanDays(c, audit.TopAccount)
	audit.PostsPerDay = float64(audit.TopCount) / audit.SpanDays
	audit.Automated = audit.PostsPerDay > AutomationRate
	audit.TopSources = topSources(c)
	audit.Samples = sampleBodies(c, audit.TopAccount)
	return audit, nil
}

// postingSpanDays measures first-to-last timestamp distance for one
// account, floored at minSpanDays.
func postingSpanDays(c *corpus.Corpus, userID string) float64 {
	var first, last int64
	seen := false
	for _, p := range c.Posts() {
		if p.UserID != userID || p.CreatedAt.IsZero() {
			continue
		}
		ts := p.CreatedAt.Unix()
		if !seen {
			first, last = ts, ts
			seen = true
			continue
		}
		if ts < first {
			first = ts
		}
		if ts > last {
			last = ts
		}
	}

	days := float64(last-first) / 86400
	if days < minSpanDays {
		days = minSpanDays
	}
	return days
}

func topSources(c *corpus.Corpus) []SourceCount {
	counts := make(map[string]int)
	for _, p := range c.Posts() {
		if p.Source == "" {
			continue
		}
		counts[p.Source]++
	}
	if len(counts) == 0 {
		return nil
	}

	out := make([]SourceCount, 0, len(counts))
	for src, n := range counts {
		out = append(out, SourceCount{Source: src, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Source < out[j].Source
	})
	if len(out) > maxSources {
		out = out[:maxSources]
	}
	return out
}

func sampleBodies(c *corpus.Corpus, userID string) []string {
	var samples []string
	for _, p := range c.Posts() {
		if p.UserID != userID {
			continue
		}
		samples = append(samples, p.Text)
		if len(samples) == maxSamples {
			break
		}
	}
	return samples
}
