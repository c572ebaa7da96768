// Package profile turns the tags selected during an interview into short
// human-readable statements about the learner.
package profile

import (
	"sort"
	"strings"
)

// TopN is how many of the most frequent tags are considered for insights.
const TopN = 5

// Insight is one statement about the learner.
type Insight struct {
	Area string `json:"area"`
	Text string `json:"insight"`
}

var tagInsights = map[string]Insight{
	"solving_complex":      {"Problem-Solving", "You thrive on tackling complex technical challenges."},
	"building_products":    {"Career Focus", "You're driven to create impactful products."},
	"data_insights":        {"Analytical Strengths", "You excel at uncovering data-driven insights."},
	"user_experience":      {"Design Orientation", "You prioritize intuitive user experiences."},
	"coding":               {"Technical Skills", "You enjoy programming and building solutions."},
	"data_analysis":        {"Data Orientation", "You're skilled at analyzing datasets."},
	"infrastructure":       {"System Orientation", "You focus on building robust systems."},
	"independent":          {"Work Style", "You prefer independent problem-solving."},
	"team_player":          {"Collaboration Style", "You thrive in collaborative teams."},
	"leader":               {"Leadership", "You enjoy leading projects and teams."},
	"deep_specialist":      {"Learning Approach", "You aim to master specific technologies."},
	"versatile_generalist": {"Learning Approach", "You value broad technical knowledge."},
	"practical_builder":    {"Learning Style", "You learn best through hands-on projects."},
	"ai_ml":                {"Technology Interests", "You're passionate about AI and machine learning."},
	"cloud_edge":           {"Infrastructure Interest", "You're drawn to cloud technologies."},
	"cybersecurity":        {"Security Focus", "You prioritize system security."},
}

type phrase struct {
	tag, text string
}

// Checked in this order regardless of selection order.
var environments = []phrase{
	{"startup", "fast-paced startups"},
	{"enterprise", "established enterprises"},
	{"agency", "creative agencies"},
	{"remote", "remote-first organizations"},
	{"research", "research-focused environments"},
}

var motivations = []phrase{
	{"problem_solving", "intellectual challenge"},
	{"user_impact", "user impact"},
	{"innovation", "innovation"},
	{"stability", "stability"},
	{"growth", "continuous learning"},
	{"autonomy", "autonomy"},
}

// Summarize derives insights from a flattened tag list (see
// recommend.FlattenResponses). The result lists the work environment
// sentence first, then one insight per area for the TopN most frequent
// tags, then the motivation sentence. Empty input yields no insights.
func Summarize(tags []string) []Insight {
	present := make(map[string]bool, len(tags))
	for _, t := range tags {
		present[t] = true
	}

	var out []Insight
	if env := matchPhrases(environments, present); len(env) > 0 {
		out = append(out, Insight{
			Area: "Work Environment",
			Text: "You prefer " + strings.Join(env, " and ") + ".",
		})
	}

	seenArea := make(map[string]bool)
	for _, t := range mostFrequent(tags, TopN) {
		ins, ok := tagInsights[t]
		if !ok || seenArea[ins.Area] {
			continue
		}
		seenArea[ins.Area] = true
		out = append(out, ins)
	}

	if mot := matchPhrases(motivations, present); len(mot) > 0 {
		out = append(out, Insight{
			Area: "Motivation",
			Text: "You're motivated by " + strings.Join(mot, " and ") + ".",
		})
	}
	return out
}

func matchPhrases(table []phrase, present map[string]bool) []string {
	var out []string
	for _, p := range table {
		if present[p.tag] {
			out = append(out, p.text)
		}
	}
	return out
}

// mostFrequent returns up to n distinct tags by descending count. Ties keep
// first-appearance order.
func mostFrequent(tags []string, n int) []string {
	counts := make(map[string]int)
	var order []string
	for _, t := range tags {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}
