package feasibility

import (
	"errors"
	"testing"

	"github.com/civiclens/tweetsift/pkg/tweetsift/corpus"
	"github.com/civiclens/tweetsift/pkg/tweetsift/internalerr"
)

func TestMultiplexOverlap(t *testing.T) {
	c := corpus.New([]corpus.Post{
		// both layers in one post
		{ScreenName: "both", Text: "RT @x agreed, cc @y"},
		// retweet layer only
		{ScreenName: "rtonly", Text: "RT @x this"},
		// mention layer only
		{ScreenName: "mentiononly", Text: "hey @z look"},
		// inactive
		{ScreenName: "silent", Text: "nothing to see"},
	})

	r, err := Multiplex(c, DefaultMultiplexOptions())
	if err != nil {
		t.Fatalf("Multiplex: %v", err)
	}
	if r.RetweetingUsers != 2 {
		t.Errorf("RetweetingUsers = %d, want 2", r.RetweetingUsers)
	}
	if r.MentioningUsers != 2 {
		t.Errorf("MentioningUsers = %d, want 2", r.MentioningUsers)
	}
	if r.Intersection != 1 {
		t.Errorf("Intersection = %d, want 1", r.Intersection)
	}
	if r.Union != 3 {
		t.Errorf("Union = %d, want 3", r.Union)
	}
	if want := 1.0 / 3.0; r.Jaccard != want {
		t.Errorf("Jaccard = %v, want %v", r.Jaccard, want)
	}
	if !r.WeakOverlap {
		t.Error("expected WeakOverlap below the 50-user threshold")
	}
}

func TestMultiplexInvariants(t *testing.T) {
	c := corpus.New([]corpus.Post{
		{ScreenName: "a", Text: "RT @x hello @y"},
		{ScreenName: "b", Text: "RT @x hi"},
		{ScreenName: "c", Text: "@y morning"},
	})

	r, err := Multiplex(c, DefaultMultiplexOptions())
	if err != nil {
		t.Fatalf("Multiplex: %v", err)
	}
	if r.Jaccard < 0 || r.Jaccard > 1 {
		t.Errorf("Jaccard = %v, want in [0,1]", r.Jaccard)
	}
	minLayer := r.RetweetingUsers
	if r.MentioningUsers < minLayer {
		minLayer = r.MentioningUsers
	}
	if r.Intersection > minLayer {
		t.Errorf("Intersection %d > min layer size %d", r.Intersection, minLayer)
	}
	if minLayer > r.Union {
		t.Errorf("min layer size %d > union %d", minLayer, r.Union)
	}
}

func TestMultiplexNoActiveUsers(t *testing.T) {
	c := corpus.New([]corpus.Post{
		{ScreenName: "a", Text: "quiet"},
		{ScreenName: "b", Text: "also quiet"},
	})

	if _, err := Multiplex(c, DefaultMultiplexOptions()); !errors.Is(err, internalerr.ErrNoActiveUsers) {
		t.Fatalf("err = %v, want ErrNoActiveUsers", err)
	}
}

func TestMultiplexSampleCappedAtCorpusSize(t *testing.T) {
	c := corpus.New([]corpus.Post{
		{ScreenName: "a", Text: "RT @x hi"},
	})

	r, err := Multiplex(c, MultiplexOptions{SampleSize: 20000, Seed: DefaultSeed})
	if err != nil {
		t.Fatalf("Multiplex: %v", err)
	}
	if r.SampledPosts != 1 {
		t.Errorf("SampledPosts = %d, want 1", r.SampledPosts)
	}
}
