// Package extract derives directed interaction targets from tweet text.
package extract

import "regexp"

var (
	retweetPattern = regexp.MustCompile(`RT @(\w+)`)
	mentionPattern = regexp.MustCompile(`@(\w+)`)
)

// Interactions parses one tweet body and returns the retweet targets and
// mention targets, each in order of first appearance with duplicates
// retained.
//
// Retweet targets are matched first as "RT @handle". Those substrings are
// then removed before the mention pass, so a retweeted user is not double
// counted as a mention. A second bare "@handle" occurrence of the same
// user elsewhere in the text still counts as a mention.
//
// Empty text yields two empty lists.
func Interactions(text string) (retweets, mentions []string) {
	if text == "" {
		return nil, nil
	}

	for _, m := range retweetPattern.FindAllStringSubmatch(text, -1) {
		retweets = append(retweets, m[1])
	}

	remainder := retweetPattern.ReplaceAllString(text, "")
	for _, m := range mentionPattern.FindAllStringSubmatch(remainder, -1) {
		mentions = append(mentions, m[1])
	}

	return retweets, mentions
}
