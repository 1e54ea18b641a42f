package filter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/civiclens/tweetsift/pkg/tweetsift/corpus"
	"github.com/civiclens/tweetsift/pkg/tweetsift/internalerr"
	"github.com/civiclens/tweetsift/pkg/tweetsift/ledger/memledger"
)

func TestPipelineRunsAllStagesAndRecordsLedger(t *testing.T) {
	var posts []corpus.Post
	// duplicates for the noise stage
	for i := 0; i < 3; i++ {
		posts = append(posts, corpus.Post{PostID: fmt.Sprintf("d%d", i), UserID: "u1", Text: "en: same thing four words"})
	}
	// a foreign post for the language stage
	posts = append(posts, corpus.Post{PostID: "f1", UserID: "u2", Text: "es: hola que tal amigos"})
	// a hyper-active author for the bot stage
	for i := 0; i < 300; i++ {
		posts = append(posts, corpus.Post{PostID: fmt.Sprintf("b%d", i), UserID: "bot", Text: fmt.Sprintf("en: unique spam payload number %d", i)})
	}
	for i := 0; i < 99; i++ {
		posts = append(posts, corpus.Post{PostID: fmt.Sprintf("h%d", i), UserID: fmt.Sprintf("u%d", i+10), Text: fmt.Sprintf("en: a human wrote this one %d", i)})
	}

	store := memledger.New()
	p, err := New(Options{
		Identifier: fakeIdentifier{},
		Ledger:     store,
		OutputDir:  t.TempDir(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	clean, results, err := p.Run(context.Background(), corpus.New(posts))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("stage results = %d, want 3", len(results))
	}
	for i, stage := range []string{"language", "noise", "bot"} {
		if results[i].Stage != stage {
			t.Errorf("results[%d].Stage = %s, want %s", i, results[i].Stage, stage)
		}
	}

	// Output of each stage feeds the next.
	if results[0].Output != results[1].Input {
		t.Errorf("language output %d != noise input %d", results[0].Output, results[1].Input)
	}
	if results[1].Output != results[2].Input {
		t.Errorf("noise output %d != bot input %d", results[1].Output, results[2].Input)
	}
	if clean.Len() != results[2].Output {
		t.Errorf("clean corpus %d != bot output %d", clean.Len(), results[2].Output)
	}
	for _, post := range clean.Posts() {
		if post.UserID == "bot" {
			t.Fatal("bot rows survived the pipeline")
		}
	}

	runs, err := store.Runs(context.Background())
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("ledger runs = %d, want 1", len(runs))
	}
	entries, err := store.Entries(context.Background(), runs[0])
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("ledger entries = %d, want 3", len(entries))
	}
	for i, e := range entries {
		if e.Stage != results[i].Stage || e.Input != results[i].Input || e.Output != results[i].Output {
			t.Errorf("ledger entry %d = %+v, does not match stage result %+v", i, e, results[i])
		}
	}
}

func TestPipelineRequiresIdentifier(t *testing.T) {
	if _, err := New(Options{}); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestPipelineEmptyCorpus(t *testing.T) {
	p, err := New(Options{Identifier: fakeIdentifier{}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, _, err := p.Run(context.Background(), corpus.New(nil)); !errors.Is(err, internalerr.ErrNoCorpus) {
		t.Fatalf("err = %v, want ErrNoCorpus", err)
	}
}
