// Package recommend ranks career profiles against the tags a learner
// selected during the interview.
package recommend

import (
	"math"
	"sort"

	"github.com/aryan24-cs/StudyGenie/internal/catalog"
	"github.com/aryan24-cs/StudyGenie/internal/interview"
)

const (
	// TopN is the maximum number of matches returned.
	TopN = 5

	// MinMatch and MaxMatch bound every reported percentage.
	MinMatch = 50
	MaxMatch = 95
)

// Match is a scored career.
type Match struct {
	Career          catalog.Career `json:"career"`
	MatchPercentage int            `json:"matchPercentage"`
	MatchedTags     []string       `json:"matchedTags"`
}

// Recommend scores every career by the share of its tags present in
// selected, clamps the score to [MinMatch, MaxMatch] and returns at most
// TopN matches ordered by score. Ties keep catalog order.
func Recommend(selected []string, careers []catalog.Career) []Match {
	chosen := make(map[string]bool, len(selected))
	for _, tag := range selected {
		chosen[tag] = true
	}

	matches := make([]Match, 0, len(careers))
	for _, c := range careers {
		matched := matchedTags(c.Tags, chosen)
		matches = append(matches, Match{
			Career:          c,
			MatchPercentage: score(len(matched), len(c.Tags)),
			MatchedTags:     matched,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})
	if len(matches) > TopN {
		matches = matches[:TopN]
	}
	return matches
}

func matchedTags(tags []string, chosen map[string]bool) []string {
	out := []string{}
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if chosen[tag] && !seen[tag] {
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}

// score converts an overlap into a clamped whole percentage. A career with
// no tags sits at the floor.
func score(matched, total int) int {
	if total == 0 {
		return MinMatch
	}
	raw := int(math.Round(float64(matched) * 100 / float64(total)))
	return min(max(raw, MinMatch), MaxMatch)
}

// FlattenResponses returns the selected tags of every non-skipped response
// in presentation order. Duplicates are kept so callers can count
// frequency.
func FlattenResponses(responses []interview.Response) []string {
	var tags []string
	for _, r := range responses {
		if r.Skipped {
			continue
		}
		tags = append(tags, r.Selected...)
	}
	return tags
}
