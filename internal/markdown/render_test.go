package markdown

import (
	"strings"
	"testing"

	"issuemd/internal/domain"
)

func TestMarker(t *testing.T) {
	if got := Marker(42); got != "<!-- GITEA_ISSUE:42 -->" {
		t.Errorf("Marker(42) = %q", got)
	}
}

func TestRender_MinimalIssue(t *testing.T) {
	issue := domain.Issue{
		Index: 5,
		Title: "Crash on startup",
		Body:  "App crashes immediately.",
	}

	want := "## #5: Crash on startup\n" +
		"<!-- GITEA_ISSUE:5 -->\n" +
		"App crashes immediately.\n"

	if got := Render(issue); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_OmitsEmptySections(t *testing.T) {
	issue := domain.Issue{Index: 5, Title: "Crash on startup", Body: "Boom."}

	got := Render(issue)
	if strings.Contains(got, "### Attachments") {
		t.Errorf("expected no Attachments section, got:\n%s", got)
	}
	if strings.Contains(got, "### Comments") {
		t.Errorf("expected no Comments section, got:\n%s", got)
	}
}

func TestRender_OmitsEmptyBody(t *testing.T) {
	issue := domain.Issue{Index: 5, Title: "No description", Body: "   \n  "}

	want := "## #5: No description\n<!-- GITEA_ISSUE:5 -->\n"
	if got := Render(issue); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_IsDeterministic(t *testing.T) {
	issue := domain.Issue{
		Index: 12,
		Title: "Flaky test",
		Body:  "Sometimes fails.",
		Comments: []domain.Comment{
			{Author: "alice", Body: "Seen it too."},
			{Author: "bob", Body: "Reproduced on main."},
		},
		Attachments: []domain.Attachment{
			{Name: "trace.log", Path: "./attachments/issue_12/trace.log"},
		},
	}

	first := Render(issue)
	second := Render(issue)
	if first != second {
		t.Errorf("Render is not deterministic:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestRender_AttachmentClassification(t *testing.T) {
	issue := domain.Issue{
		Index: 7,
		Title: "Attachments",
		Attachments: []domain.Attachment{
			{Name: "photo.PNG", Path: "./attachments/issue_7/photo.PNG"},
			{Name: "report.pdf", Path: "./attachments/issue_7/report.pdf"},
		},
	}

	got := Render(issue)

	if !strings.Contains(got, "![photo.PNG](./attachments/issue_7/photo.PNG)") {
		t.Errorf("expected photo.PNG as inline image, got:\n%s", got)
	}
	if !strings.Contains(got, "- [report.pdf](./attachments/issue_7/report.pdf)") {
		t.Errorf("expected report.pdf as link, got:\n%s", got)
	}
}

func TestRender_Comments(t *testing.T) {
	issue := domain.Issue{
		Index: 9,
		Title: "Question",
		Body:  "How do I reset?",
		Comments: []domain.Comment{
			{Author: "alice", Body: "Use the settings menu."},
			{Author: "bob", Body: "   "},
			{Author: "", Body: "Anonymous tip."},
		},
	}

	got := Render(issue)

	if !strings.Contains(got, "### Comments") {
		t.Fatalf("expected Comments section, got:\n%s", got)
	}
	if !strings.Contains(got, "**alice:**\nUse the settings menu.") {
		t.Errorf("expected alice's comment, got:\n%s", got)
	}
	if strings.Contains(got, "**bob:**") {
		t.Errorf("expected empty comment to be skipped, got:\n%s", got)
	}
	if !strings.Contains(got, "**Unknown:**\nAnonymous tip.") {
		t.Errorf("expected missing author to render as Unknown, got:\n%s", got)
	}
}

func TestRender_OmitsCommentsWhenAllBodiesEmpty(t *testing.T) {
	issue := domain.Issue{
		Index:    3,
		Title:    "Quiet",
		Comments: []domain.Comment{{Author: "alice", Body: " "}},
	}

	if got := Render(issue); strings.Contains(got, "### Comments") {
		t.Errorf("expected no Comments section, got:\n%s", got)
	}
}
