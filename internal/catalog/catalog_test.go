package catalog

import (
	"strings"
	"testing"
)

func TestDefault_Counts(t *testing.T) {
	c := Default()
	if len(c.Questions) != 8 {
		t.Errorf("got %d base questions, want 8", len(c.Questions))
	}
	if len(c.Conditionals) != 5 {
		t.Errorf("got %d conditionals, want 5", len(c.Conditionals))
	}
	if len(c.Careers) != 12 {
		t.Errorf("got %d careers, want 12", len(c.Careers))
	}
}

func TestDefault_RequiredFlags(t *testing.T) {
	tests := []struct {
		id       string
		required bool
		multi    bool
	}{
		{"problems", true, true},
		{"collaboration", true, false},
		{"activities", true, true},
		{"industry", false, true},
		{"learning", true, false},
		{"trends", false, true},
		{"environment", true, true},
		{"satisfaction", true, true},
		{"coding_interests", false, true},
	}
	c := Default()
	for _, tt := range tests {
		q, ok := c.Question(tt.id)
		if !ok {
			t.Errorf("Question(%q) not found", tt.id)
			continue
		}
		if q.Required != tt.required {
			t.Errorf("%s: required = %v, want %v", tt.id, q.Required, tt.required)
		}
		if q.MultiSelect != tt.multi {
			t.Errorf("%s: multi_select = %v, want %v", tt.id, q.MultiSelect, tt.multi)
		}
	}
}

func TestTriggeredBy(t *testing.T) {
	c := Default()
	tests := []struct {
		tag  string
		want string
	}{
		{"solving_complex", "complex_problems"},
		{"coding", "coding_interests"},
		{"ai_ml", "ai_interests"},
		{"user_experience", "ux_interests"},
		{"data_insights", "data_interests"},
	}
	for _, tt := range tests {
		got := c.TriggeredBy(tt.tag)
		if len(got) != 1 || got[0].ID != tt.want {
			t.Errorf("TriggeredBy(%q) = %v, want [%s]", tt.tag, ids(got), tt.want)
		}
	}
	if got := c.TriggeredBy("testing"); got != nil {
		t.Errorf("TriggeredBy(testing) = %v, want nil", ids(got))
	}
}

func TestCareer_Lookup(t *testing.T) {
	cr, ok := Default().Career("software-developer")
	if !ok {
		t.Fatal("software-developer not found")
	}
	if cr.Title != "Software Developer" {
		t.Errorf("title = %q", cr.Title)
	}
	if len(cr.Tags) != 9 {
		t.Errorf("got %d tags, want 9", len(cr.Tags))
	}
	if _, ok := Default().Career("astronaut"); ok {
		t.Error("expected astronaut to be missing")
	}
}

func TestDefault_NoUnmatchedTags(t *testing.T) {
	if un := Default().UnmatchedTags(); len(un) != 0 {
		t.Errorf("unexpected unmatched career tags: %v", un)
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte(`version: "1.0.0"
questions:
  - id: q1
    prompt: Pick one
    colour: blue
    options:
      - {id: a, title: A}
      - {id: b, title: B}
`))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParse_CareerFields(t *testing.T) {
	const base = `version: "1.0.0"
questions:
  - id: q1
    prompt: Pick one
    options:
      - {id: a, title: A}
      - {id: b, title: B}
careers:
  - id: dev
    title: Developer
    tags: [a]
    learning_resource: {name: Docs, url: "https://go.dev/doc"}
    job_search_url: "https://www.indeed.com/jobs?q=Developer"
`
	c, err := Parse([]byte(base))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cr, _ := c.Career("dev")
	if cr.JobSearchURL != "https://www.indeed.com/jobs?q=Developer" || cr.LearningResource.URL != "https://go.dev/doc" {
		t.Errorf("career links = %+v", cr)
	}

	// There is no field for a separate details page.
	_, err = Parse([]byte(base + `    details_page: "/career-details?career=Developer"
`))
	if err == nil || !strings.Contains(err.Error(), "details_page") {
		t.Errorf("err = %v, want unknown field details_page", err)
	}
}

func TestNew_CollectsAllProblems(t *testing.T) {
	q := Question{
		ID:     "q1",
		Prompt: "Pick",
		Options: []Option{
			{ID: "a", Title: "A"},
			{ID: "a", Title: "A again"},
		},
	}
	cond := ConditionalQuestion{
		Question: Question{
			ID:      "q1",
			Prompt:  "Follow up",
			Options: []Option{{ID: "x", Title: "X"}, {ID: "y", Title: "Y"}},
		},
		DependsOn: []string{"missing"},
	}
	careers := []Career{{ID: "c", Title: "C"}, {ID: "c", Title: "C2"}}

	_, err := New("2.0.0", []Question{q}, []ConditionalQuestion{cond}, careers)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{
		"duplicate option \"a\"",
		"duplicate question ID: \"q1\"",
		"unknown tag \"missing\"",
		"duplicate career ID: \"c\"",
		"not supported",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q:\n%v", want, err)
		}
	}
}

func TestNew_BadVersion(t *testing.T) {
	q := Question{ID: "q", Prompt: "p", Options: []Option{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}}
	_, err := New("latest", []Question{q}, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "not a semantic version") {
		t.Fatalf("err = %v, want semantic version error", err)
	}
}

func TestNew_TooFewOptions(t *testing.T) {
	q := Question{ID: "q", Prompt: "p", Options: []Option{{ID: "a", Title: "A"}}}
	_, err := New("1.2.0", []Question{q}, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "\"min\"") {
		t.Fatalf("err = %v, want min options error", err)
	}
}

func TestHasOption(t *testing.T) {
	q, _ := Default().Question("activities")
	if !q.HasOption("coding") {
		t.Error("expected coding option")
	}
	if q.HasOption("ai_ml") {
		t.Error("ai_ml belongs to trends, not activities")
	}
}

func ids(cqs []ConditionalQuestion) []string {
	out := make([]string, len(cqs))
	for i, c := range cqs {
		out[i] = c.ID
	}
	return out
}
