package feasibility

import (
	"math/rand"

	"github.com/civiclens/tweetsift/pkg/tweetsift/corpus"
)

// DefaultSeed keeps the feasibility estimates reproducible across runs.
const DefaultSeed int64 = 42

// samplePosts draws a uniform random subsample without replacement.
// When the corpus is no larger than size, all posts are used.
func samplePosts(posts []corpus.Post, size int, seed int64) []corpus.Post {
	if size <= 0 || len(posts) <= size {
		return posts
	}
	r := rand.New(rand.NewSource(seed))
	idx := r.Perm(len(posts))[:size]
	out := make([]corpus.Post, size)
	for i, j := range idx {
		out[i] = posts[j]
	}
	return out
}
