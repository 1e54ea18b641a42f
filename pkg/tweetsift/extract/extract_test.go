package extract

import (
	"reflect"
	"testing"
)

func TestInteractions(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		retweets []string
		mentions []string
	}{
		{
			name:     "retweet consumed before mention pass",
			text:     "RT @alice great point! also cc @bob and @alice",
			retweets: []string{"alice"},
			mentions: []string{"bob", "alice"},
		},
		{
			name:     "plain mention only",
			text:     "hey @bob what do you think",
			retweets: nil,
			mentions: []string{"bob"},
		},
		{
			name:     "duplicate retweets retained in order",
			text:     "RT @x hi RT @x again",
			retweets: []string{"x", "x"},
			mentions: nil,
		},
		{
			name:     "duplicate mentions retained in order",
			text:     "@b then @a then @b again",
			retweets: nil,
			mentions: []string{"b", "a", "b"},
		},
		{
			name:     "no interactions",
			text:     "just shouting into the void",
			retweets: nil,
			mentions: nil,
		},
		{
			name:     "empty text",
			text:     "",
			retweets: nil,
			mentions: nil,
		},
		{
			name:     "lowercase rt is not a retweet",
			text:     "rt @alice hello",
			retweets: nil,
			mentions: []string{"alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retweets, mentions := Interactions(tt.text)
			if !reflect.DeepEqual(retweets, tt.retweets) {
				t.Errorf("retweets = %v, want %v", retweets, tt.retweets)
			}
			if !reflect.DeepEqual(mentions, tt.mentions) {
				t.Errorf("mentions = %v, want %v", mentions, tt.mentions)
			}
		})
	}
}

func TestInteractionsRetweetNeverLeaksIntoMentions(t *testing.T) {
	retweets, mentions := Interactions("RT @carol read this")
	if len(retweets) != 1 || retweets[0] != "carol" {
		t.Fatalf("retweets = %v, want [carol]", retweets)
	}
	for _, m := range mentions {
		if m == "carol" {
			t.Fatalf("retweeted user leaked into mentions: %v", mentions)
		}
	}
}
