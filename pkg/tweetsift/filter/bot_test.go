package filter

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/civiclens/tweetsift/pkg/tweetsift/corpus"
)

// One author posts 1000 times, 99 others once each: the 0.995 quantile
// of author counts must flag exactly the hyper-active author.
func TestBotFlagsOnlyHyperActiveAuthor(t *testing.T) {
	var posts []corpus.Post
	for i := 0; i < 1000; i++ {
		posts = append(posts, corpus.Post{PostID: fmt.Sprintf("bot%d", i), UserID: "9000", Text: "spam"})
	}
	for i := 0; i < 99; i++ {
		posts = append(posts, corpus.Post{PostID: fmt.Sprintf("h%d", i), UserID: fmt.Sprintf("u%d", i), Text: "hi"})
	}
	c := corpus.New(posts)

	outDir := t.TempDir()
	humans, res, err := Bot(c, BotOptions{Quantile: 0.995, SavePrefix: "run", OutputDir: outDir})
	if err != nil {
		t.Fatalf("Bot: %v", err)
	}

	if humans.Len() != 99 {
		t.Fatalf("human rows = %d, want 99", humans.Len())
	}
	for _, p := range humans.Posts() {
		if p.UserID == "9000" {
			t.Fatal("bot-authored row leaked into human subset")
		}
	}
	if res.Removed != 1000 {
		t.Errorf("Removed = %d, want 1000", res.Removed)
	}

	// Row-count conservation: human subset plus persisted bot subset
	// reassemble the input with no overlap.
	artifact := filepath.Join(outDir, "run_bots_removed.csv")
	if res.ArtifactPath != artifact {
		t.Fatalf("ArtifactPath = %s, want %s", res.ArtifactPath, artifact)
	}
	bots, err := corpus.Load(artifact, 0)
	if err != nil {
		t.Fatalf("load bot artifact: %v", err)
	}
	if bots.Len()+humans.Len() != c.Len() {
		t.Errorf("conservation violated: %d + %d != %d", bots.Len(), humans.Len(), c.Len())
	}
	humanIDs := make(map[string]struct{}, humans.Len())
	for _, p := range humans.Posts() {
		humanIDs[p.PostID] = struct{}{}
	}
	for _, p := range bots.Posts() {
		if _, ok := humanIDs[p.PostID]; ok {
			t.Fatalf("post %s appears in both subsets", p.PostID)
		}
	}
}

func TestBotUniformActivityRemovesNobody(t *testing.T) {
	var posts []corpus.Post
	for i := 0; i < 20; i++ {
		posts = append(posts, corpus.Post{PostID: fmt.Sprintf("p%d", i), UserID: fmt.Sprintf("u%d", i%10), Text: "x"})
	}

	humans, res, err := Bot(corpus.New(posts), BotOptions{Quantile: 0.995})
	if err != nil {
		t.Fatalf("Bot: %v", err)
	}
	if humans.Len() != 20 || res.Removed != 0 {
		t.Errorf("uniform activity removed %d rows, want 0", res.Removed)
	}
}

func TestBotNoArtifactWithoutPrefix(t *testing.T) {
	var posts []corpus.Post
	for i := 0; i < 200; i++ {
		posts = append(posts, corpus.Post{UserID: "loud", Text: "x"})
	}
	for i := 0; i < 99; i++ {
		posts = append(posts, corpus.Post{UserID: fmt.Sprintf("u%d", i), Text: "y"})
	}

	_, res, err := Bot(corpus.New(posts), BotOptions{Quantile: 0.995})
	if err != nil {
		t.Fatalf("Bot: %v", err)
	}
	if res.ArtifactPath != "" {
		t.Errorf("unexpected artifact %s", res.ArtifactPath)
	}
	if res.Removed != 200 {
		t.Errorf("Removed = %d, want 200", res.Removed)
	}
}
