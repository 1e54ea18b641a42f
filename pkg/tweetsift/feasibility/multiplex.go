package feasibility

import (
	"github.com/civiclens/tweetsift/pkg/tweetsift/corpus"
	"github.com/civiclens/tweetsift/pkg/tweetsift/extract"
	"github.com/civiclens/tweetsift/pkg/tweetsift/internalerr"
)

// MinLayerOverlap is the smallest both-layer user count that still gives
// a cross-layer behavioral comparison any statistical power.
const MinLayerOverlap = 50

// MultiplexOptions controls the RQ3 sample.
type MultiplexOptions struct {
	SampleSize int
	Seed       int64
}

// DefaultMultiplexOptions returns the standard 20k-post seeded sample.
func DefaultMultiplexOptions() MultiplexOptions {
	return MultiplexOptions{SampleSize: 20000, Seed: DefaultSeed}
}

// MultiplexReport summarizes user participation across the retweet and
// mention layers.
type MultiplexReport struct {
	SampledPosts    int
	RetweetingUsers int
	MentioningUsers int
	Intersection    int
	Union           int
	Jaccard         float64
	WeakOverlap     bool
}

// Multiplex samples the corpus and measures how many authors act in the
// retweet layer, the mention layer, and both. A single post can place
// its author in both sets. An empty union is reported as
// internalerr.ErrNoActiveUsers rather than a zero-overlap verdict.
func Multiplex(c *corpus.Corpus, opts MultiplexOptions) (*MultiplexReport, error) {
	if c == nil || c.Len() == 0 {
		return nil, internalerr.ErrNoCorpus
	}

	sample := samplePosts(c.Posts(), opts.SampleSize, opts.Seed)
	retweeting := make(map[string]struct{})
	mentioning := make(map[string]struct{})

	for _, p := range sample {
		retweets, mentions := extract.Interactions(p.Text)
		if len(retweets) > 0 {
			retweeting[p.ScreenName] = struct{}{}
		}
		if len(mentions) > 0 {
			mentioning[p.ScreenName] = struct{}{}
		}
	}

	intersection := 0
	for user := range retweeting {
		if _, ok := mentioning[user]; ok {
			intersection++
		}
	}
	union := len(retweeting) + len(mentioning) - intersection
	if union == 0 {
		return nil, internalerr.ErrNoActiveUsers
	}

	return &MultiplexReport{
		SampledPosts:    len(sample),
		RetweetingUsers: len(retweeting),
		MentioningUsers: len(mentioning),
		Intersection:    intersection,
		Union:           union,
		Jaccard:         float64(intersection) / float64(union),
		WeakOverlap:     intersection < MinLayerOverlap,
	}, nil
}
