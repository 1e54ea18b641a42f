// Package report renders analyzer results and stage summaries for the
// console. Pure presentation over the derived structs; nothing here
// feeds back into the pipeline.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/civiclens/tweetsift/pkg/tweetsift/feasibility"
	"github.com/civiclens/tweetsift/pkg/tweetsift/filter"
	"github.com/civiclens/tweetsift/pkg/tweetsift/forensics"
	"github.com/civiclens/tweetsift/pkg/tweetsift/stats"
)

// Printer writes colorized report sections to one destination.
type Printer struct {
	out    io.Writer
	header *color.Color
	ok     *color.Color
	warn   *color.Color
	bad    *color.Color
}

// NewPrinter creates a printer. noColor disables ANSI output globally.
func NewPrinter(out io.Writer, noColor bool) *Printer {
	if noColor {
		color.NoColor = true
	}
	return &Printer{
		out:    out,
		header: color.New(color.FgCyan, color.Bold),
		ok:     color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
		bad:    color.New(color.FgRed),
	}
}

// Topology renders the RQ1 connectivity report.
func (p *Printer) Topology(r *feasibility.TopologyReport) {
	p.header.Fprintln(p.out, "--- RQ1: Topology Feasibility ---")
	fmt.Fprintf(p.out, "  sampled posts:    %d\n", r.SampledPosts)
	fmt.Fprintf(p.out, "  nodes:            %d\n", r.Nodes)
	fmt.Fprintf(p.out, "  edges:            %d\n", r.Edges)
	fmt.Fprintf(p.out, "  components:       %d\n", r.Components)
	fmt.Fprintf(p.out, "  giant component:  %d (%.1f%%)\n", r.GiantSize, r.GiantFraction*100)
	if r.Fragmented {
		p.warn.Fprintln(p.out, "  WARNING: network is highly fragmented; community detection may fail")
	} else {
		p.ok.Fprintln(p.out, "  dominant giant component detected; modularity analysis is valid")
	}
}

// Semantic renders the RQ2 text-richness report.
func (p *Printer) Semantic(r *feasibility.SemanticReport) {
	p.header.Fprintln(p.out, "--- RQ2: Semantic Feasibility ---")
	fmt.Fprintf(p.out, "  posts:            %d\n", r.Posts)
	fmt.Fprintf(p.out, "  mean words/post:  %.1f\n", r.MeanWords)
	fmt.Fprintf(p.out, "  unique ratio:     %.1f%%\n", r.UniqueRatio*100)
	if r.TooShort {
		p.warn.Fprintln(p.out, "  WARNING: posts are very short; topic models need richer text")
	}
	if r.CriticalDuplication {
		p.bad.Fprintln(p.out, "  CRITICAL: massive duplication; aggressive deduplication required")
	}
	if !r.TooShort && !r.CriticalDuplication {
		p.ok.Fprintln(p.out, "  text richness looks sufficient for topic modeling")
	}
}

// Multiplex renders the RQ3 layer-overlap report.
func (p *Printer) Multiplex(r *feasibility.MultiplexReport) {
	p.header.Fprintln(p.out, "--- RQ3: Multiplex Overlap ---")
	fmt.Fprintf(p.out, "  sampled posts:    %d\n", r.SampledPosts)
	fmt.Fprintf(p.out, "  retweeting users: %d\n", r.RetweetingUsers)
	fmt.Fprintf(p.out, "  mentioning users: %d\n", r.MentioningUsers)
	fmt.Fprintf(p.out, "  doing both:       %d\n", r.Intersection)
	fmt.Fprintf(p.out, "  jaccard:          %.4f\n", r.Jaccard)
	if r.WeakOverlap {
		p.warn.Fprintln(p.out, "  WARNING: few users act in both layers; correlation analysis will be weak")
	} else {
		p.ok.Fprintln(p.out, "  sufficient overlap for cross-layer behavioral comparison")
	}
}

// Activity renders the posting-concentration sanity check.
func (p *Printer) Activity(a stats.Activity) {
	p.header.Fprintln(p.out, "--- User Activity ---")
	fmt.Fprintf(p.out, "  posts:            %d\n", a.Posts)
	fmt.Fprintf(p.out, "  users:            %d\n", a.Users)
	fmt.Fprintf(p.out, "  top 1%% (%d users) produced %.1f%% of all content\n", a.TopUsers, a.TopUserShare*100)
}

// Stage renders one filtering-stage result.
func (p *Printer) Stage(r filter.StageResult) {
	p.header.Fprintf(p.out, "[%s] ", r.Stage)
	fmt.Fprintf(p.out, "%d -> %d rows (removed %d: %s)", r.Input, r.Output, r.Removed, r.Criterion)
	if r.Skipped > 0 {
		p.warn.Fprintf(p.out, " [%d unclassified, retained]", r.Skipped)
	}
	if r.ArtifactPath != "" {
		fmt.Fprintf(p.out, " -> %s", r.ArtifactPath)
	}
	fmt.Fprintln(p.out)
}

// BotAudit renders the forensic summary of a bots_removed artifact.
func (p *Printer) BotAudit(a *forensics.BotAudit) {
	p.header.Fprintf(p.out, "BOT FILE AUDIT: %s\n", a.File)
	fmt.Fprintf(p.out, "  suspicious posts:    %d\n", a.Posts)
	fmt.Fprintf(p.out, "  suspicious accounts: %d\n", a.Accounts)
	if a.Posts == 0 {
		return
	}

	fmt.Fprintf(p.out, "  top offender:        user %s\n", a.TopAccount)
	fmt.Fprintf(p.out, "    posted %d times in %.1f days (%.1f posts/day)\n", a.TopCount, a.SpanDays, a.PostsPerDay)
	if a.Automated {
		p.bad.Fprintf(p.out, "    VERDICT: high probability of automation (>%.0f posts/day)\n", forensics.AutomationRate)
	}
	if len(a.TopSources) > 0 {
		fmt.Fprintln(p.out, "  top sources:")
		for _, s := range a.TopSources {
			fmt.Fprintf(p.out, "    %6d  %s\n", s.Count, s.Source)
		}
	}
	if len(a.Samples) > 0 {
		fmt.Fprintln(p.out, "  sample content:")
		for _, s := range a.Samples {
			fmt.Fprintf(p.out, "    %q\n", s)
		}
	}
}
