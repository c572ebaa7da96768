package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/aryan24-cs/StudyGenie/internal/achievements"
	"github.com/aryan24-cs/StudyGenie/internal/app"
	"github.com/aryan24-cs/StudyGenie/internal/grading"
	"github.com/aryan24-cs/StudyGenie/internal/quiz"
	"github.com/aryan24-cs/StudyGenie/internal/ui/components"
	"github.com/aryan24-cs/StudyGenie/internal/ui/theme"
)

const ruleWidth = 60

func rule(w io.Writer) {
	fmt.Fprintln(w, theme.Hint.Render(strings.Repeat("─", ruleWidth)))
}

func printAssessment(w io.Writer, a *app.Assessment) {
	fmt.Fprintln(w, theme.Title.Render("Recommended careers"))
	rule(w)
	if len(a.Recommendations) == 0 {
		fmt.Fprintln(w, theme.Hint.Render("No careers in the catalog."))
	}
	for i, m := range a.Recommendations {
		fmt.Fprintf(w, "%d. %s  %s\n", i+1, theme.Heading.Render(m.Career.Title), theme.Selected.Render(fmt.Sprintf("%d%%", m.MatchPercentage)))
		if m.Career.Description != "" {
			fmt.Fprintf(w, "   %s\n", m.Career.Description)
		}
		if len(m.MatchedTags) > 0 {
			fmt.Fprintf(w, "   %s %s\n", theme.Hint.Render("matched:"), strings.Join(m.MatchedTags, ", "))
		}
		if m.Career.LearningResource.URL != "" {
			fmt.Fprintf(w, "   %s %s (%s)\n", theme.Hint.Render("learn:"), m.Career.LearningResource.Name, m.Career.LearningResource.URL)
		}
		if m.Career.JobSearchURL != "" {
			fmt.Fprintf(w, "   %s %s\n", theme.Hint.Render("jobs:"), m.Career.JobSearchURL)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Title.Render("About you"))
	rule(w)
	if len(a.Insights) == 0 {
		fmt.Fprintln(w, theme.Hint.Render("Answer more questions for personal insights."))
	}
	for _, in := range a.Insights {
		fmt.Fprintf(w, "%s  %s\n", theme.Heading.Render(in.Area+":"), in.Text)
	}

	if a.ID != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, theme.Hint.Render("Saved as assessment "+a.ID))
	}
	printAwards(w, a.Awards)
}

func printAwards(w io.Writer, awards []achievements.Achievement) {
	if len(awards) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, aw := range awards {
		fmt.Fprintf(w, "%s  %s  %s\n", aw.Kind.Icon(), theme.Heading.Render(aw.Title), theme.Selected.Render(fmt.Sprintf("+%d", aw.Points)))
	}
}

func printQuestionSet(w io.Writer, set *quiz.QuestionSet, showAnswers bool) {
	for i, q := range set.MultipleChoice {
		fmt.Fprintf(w, "%s %s\n", theme.Heading.Render(quiz.Key(quiz.MultipleChoice, i).String()), q.Question)
		for j, opt := range q.Options {
			marker := " "
			if showAnswers && opt == q.Answer {
				marker = theme.Correct.Render("*")
			}
			fmt.Fprintf(w, "  %s %c) %s\n", marker, 'a'+j, opt)
		}
	}
	for i, q := range set.TrueFalse {
		line := fmt.Sprintf("%s %s (true/false)", theme.Heading.Render(quiz.Key(quiz.TrueFalse, i).String()), q.Question)
		if showAnswers {
			line += "  " + theme.Correct.Render(fmt.Sprint(q.Answer))
		}
		fmt.Fprintln(w, line)
	}
	for i, q := range set.ShortAnswer {
		fmt.Fprintf(w, "%s %s\n", theme.Heading.Render(quiz.Key(quiz.ShortAnswer, i).String()), q.Question)
	}
	if set.Summary != nil {
		fmt.Fprintf(w, "%s %s\n", theme.Heading.Render(quiz.Key(quiz.Summary, 0).String()), set.Summary.Question)
	}

	if set.ConciseSummary != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, theme.Title.Render("Summary"))
		rule(w)
		fmt.Fprintln(w, set.ConciseSummary)
	}
	if showAnswers && set.DetailedSummary != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, set.DetailedSummary)
	}
}

func printResult(w io.Writer, r *grading.Result) {
	fmt.Fprintf(w, "%s  %d/%d (%.2f%%)\n", theme.Title.Render("Score"), r.Score, r.Total, r.Percentage)
	fmt.Fprintln(w, components.NewProgressBar("", r.Percentage/100, false, 40).View())
	rule(w)
	for _, f := range r.Feedback {
		fmt.Fprintf(w, "%s %s %s\n", theme.Verdict(f.Correct), theme.Heading.Render(f.Key.String()), f.Question)
		if f.UserAnswer != "" {
			fmt.Fprintf(w, "   %s %s\n", theme.Hint.Render("your answer:"), f.UserAnswer)
		}
		fmt.Fprintf(w, "   %s\n", f.Explanation)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Title.Render("Suggestions"))
	for _, s := range r.Suggestions {
		fmt.Fprintf(w, "  - %s\n", s)
	}
}

func printLevel(w io.Writer, lvl achievements.Level) {
	fmt.Fprintf(w, "%s %d  %s\n", theme.Title.Render("Level"), lvl.Number, theme.Hint.Render(fmt.Sprintf("%d points", lvl.Points)))
	label := fmt.Sprintf("%d/%d", lvl.Points%achievements.PointsPerLevel, achievements.PointsPerLevel)
	fmt.Fprintln(w, components.NewProgressBar(label, lvl.ProgressPercent/100, true, 50).View())
}
