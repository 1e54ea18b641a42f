// Package corpus loads and persists the raw tweet dataset.
//
// The dataset is a CSV export with newline record separation and tweet
// bodies that may themselves contain quoted newlines. Identifier columns
// are always kept as opaque strings; parsing them as numbers silently
// truncates the snowflake IDs.
package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Column names expected in the input file. The loader resolves positions
// from the header row, so extra columns are carried through untouched.
const (
	ColPostID     = "tweet_id"
	ColUserID     = "user_id"
	ColScreenName = "user_screen_name"
	ColText       = "tweet"
	ColCreatedAt  = "created_at"
	ColSource     = "source"
)

// Post is a single row of the dataset. IDs are opaque strings.
type Post struct {
	PostID     string
	UserID     string
	ScreenName string
	Text       string
	CreatedAt  time.Time
	Source     string

	// Raw holds the original record so removed-subset artifacts keep the
	// full original column set. Nil for synthetic posts.
	Raw []string
}

// Corpus is an ordered collection of posts loaded from one file.
// Filtering stages never mutate a corpus; they produce new ones.
type Corpus struct {
	header  []string
	posts   []Post
	path    string
	skipped int
	badTime int
}

// New builds a corpus from in-memory posts, using the canonical column set.
func New(posts []Post) *Corpus {
	return &Corpus{
		header: []string{ColCreatedAt, ColPostID, ColText, ColSource, ColUserID, ColScreenName},
		posts:  posts,
	}
}

// Posts returns the ordered post slice. Callers must not modify it.
func (c *Corpus) Posts() []Post { return c.posts }

// Len returns the number of posts.
func (c *Corpus) Len() int { return len(c.posts) }

// Header returns the original column names.
func (c *Corpus) Header() []string { return c.header }

// Path returns the file the corpus was loaded from, if any.
func (c *Corpus) Path() string { return c.path }

// Skipped reports rows dropped during load for being too short to parse.
func (c *Corpus) Skipped() int { return c.skipped }

// BadTimestamps reports rows whose created_at column did not parse;
// those rows are kept with a zero timestamp.
func (c *Corpus) BadTimestamps() int { return c.badTime }

// Split partitions the corpus by a predicate, preserving original order
// and the original column set on both sides.
func (c *Corpus) Split(keep func(Post) bool) (in, out *Corpus) {
	return c.SplitIndexed(func(_ int, p Post) bool { return keep(p) })
}

// SplitIndexed is Split with the original row index available to the
// predicate, for stages that classify rows ahead of the partition.
func (c *Corpus) SplitIndexed(keep func(int, Post) bool) (in, out *Corpus) {
	in = &Corpus{header: c.header, path: c.path}
	out = &Corpus{header: c.header, path: c.path}
	for i, p := range c.posts {
		if keep(i, p) {
			in.posts = append(in.posts, p)
		} else {
			out.posts = append(out.posts, p)
		}
	}
	return in, out
}

// timeLayouts are tried in order when parsing created_at.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02",
}

// Load reads the dataset from path. A limit > 0 stops after that many
// rows. A missing or malformed file yields a nil corpus and a wrapped
// error; callers detect the absence and abort cleanly.
func Load(path string, limit int) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.ReuseRecord = false

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header %s: %w", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimSuffix(header[i], "\r"))
	}

	idx, err := resolveColumns(header)
	if err != nil {
		return nil, fmt.Errorf("resolve columns %s: %w", path, err)
	}

	c := &Corpus{header: header, path: path}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record %s: %w", path, err)
		}
		if len(rec) <= idx.max() {
			c.skipped++
			continue
		}

		p := Post{
			PostID:     rec[idx.postID],
			UserID:     rec[idx.userID],
			ScreenName: rec[idx.screenName],
			Text:       rec[idx.text],
			Raw:        rec,
		}
		if idx.source >= 0 {
			p.Source = rec[idx.source]
		}
		if ts, ok := parseTime(rec[idx.createdAt]); ok {
			p.CreatedAt = ts
		} else {
			c.badTime++
		}

		c.posts = append(c.posts, p)
		if limit > 0 && len(c.posts) >= limit {
			break
		}
	}

	return c, nil
}

// Save writes the corpus to path as CSV, creating parent directories.
// Rows that carry their original record are written verbatim so the file
// is self-sufficient for forensic replay.
func (c *Corpus) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(c.header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range c.posts {
		rec := p.Raw
		if len(rec) != len(c.header) {
			rec = c.synthesize(p)
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// synthesize rebuilds a record from parsed fields for posts without a raw
// row (typically test fixtures).
func (c *Corpus) synthesize(p Post) []string {
	rec := make([]string, len(c.header))
	for i, col := range c.header {
		switch col {
		case ColPostID:
			rec[i] = p.PostID
		case ColUserID:
			rec[i] = p.UserID
		case ColScreenName:
			rec[i] = p.ScreenName
		case ColText:
			rec[i] = p.Text
		case ColSource:
			rec[i] = p.Source
		case ColCreatedAt:
			if !p.CreatedAt.IsZero() {
				rec[i] = p.CreatedAt.Format("2006-01-02 15:04:05")
			}
		}
	}
	return rec
}

type columns struct {
	postID     int
	userID     int
	screenName int
	text       int
	createdAt  int
	source     int
}

func (c columns) max() int {
	m := c.postID
	for _, v := range []int{c.userID, c.screenName, c.text, c.createdAt, c.source} {
		if v > m {
			m = v
		}
	}
	return m
}

func resolveColumns(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[name] = i
	}

	idx := columns{source: -1}
	required := []struct {
		name string
		dst  *int
	}{
		{ColPostID, &idx.postID},
		{ColUserID, &idx.userID},
		{ColScreenName, &idx.screenName},
		{ColText, &idx.text},
		{ColCreatedAt, &idx.createdAt},
	}
	for _, col := range required {
		i, ok := pos[col.name]
		if !ok {
			return idx, fmt.Errorf("missing column %q", col.name)
		}
		*col.dst = i
	}
	if i, ok := pos[ColSource]; ok {
		idx.source = i
	}
	return idx, nil
}

func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
