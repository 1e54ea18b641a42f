// Package feasibility answers the three pre-analysis research questions:
// whether the retweet network is connected enough for community
// detection (RQ1), whether the text is rich enough for topic modeling
// (RQ2), and whether enough users are active in both interaction layers
// to compare behavior across them (RQ3).
//
// All verdict fields are advisory heuristics surfaced to a human; nothing
// here aborts a later pipeline stage.
package feasibility

import (
	"github.com/civiclens/tweetsift/pkg/tweetsift/corpus"
	"github.com/civiclens/tweetsift/pkg/tweetsift/extract"
	"github.com/civiclens/tweetsift/pkg/tweetsift/graph"
	"github.com/civiclens/tweetsift/pkg/tweetsift/internalerr"
)

// FragmentationThreshold is the giant-component fraction below which
// community detection on the retweet layer is considered invalid.
const FragmentationThreshold = 0.05

// TopologyOptions controls the RQ1 sample.
type TopologyOptions struct {
	SampleSize int
	Seed       int64
}

// DefaultTopologyOptions returns the standard 10k-post seeded sample.
func DefaultTopologyOptions() TopologyOptions {
	return TopologyOptions{SampleSize: 10000, Seed: DefaultSeed}
}

// TopologyReport summarizes connectivity of the sampled retweet graph.
type TopologyReport struct {
	SampledPosts  int
	Nodes         int
	Edges         int
	Components    int
	GiantSize     int
	GiantFraction float64
	Fragmented    bool
}

// Topology builds a directed retweet graph from a seeded subsample and
// reports its connectivity. Zero extracted edges is an extraction
// failure (internalerr.ErrNoEdges), never a valid "no network" result.
func Topology(c *corpus.Corpus, opts TopologyOptions) (*TopologyReport, error) {
	if c == nil || c.Len() == 0 {
		return nil, internalerr.ErrNoCorpus
	}

	sample := samplePosts(c.Posts(), opts.SampleSize, opts.Seed)
	g := graph.New()
	for _, p := range sample {
		retweets, _ := extract.Interactions(p.Text)
		for _, target := range retweets {
			g.AddEdge(p.ScreenName, target)
		}
	}

	if g.EdgeCount() == 0 {
		return nil, internalerr.ErrNoEdges
	}

	components := g.WeaklyConnectedComponents()
	if len(components) == 0 {
		return nil, internalerr.ErrEmptyGraph
	}

	report := &TopologyReport{
		SampledPosts: len(sample),
		Nodes:        g.NodeCount(),
		Edges:        g.EdgeCount(),
		Components:   len(components),
		GiantSize:    g.LargestComponentSize(),
	}
	report.GiantFraction = float64(report.GiantSize) / float64(report.Nodes)
	report.Fragmented = report.GiantFraction < FragmentationThreshold
	return report, nil
}
