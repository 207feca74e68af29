package markdown

import (
	"fmt"
	"strings"

	"issuemd/internal/domain"
)

// Marker returns the invisible sentinel comment identifying an issue's
// block inside the document.
func Marker(id int64) string {
	return fmt.Sprintf("<!-- GITEA_ISSUE:%d -->", id)
}

// Render formats one issue as a markdown block: a heading with id and
// title, the marker, the body, then Attachments and Comments sections
// when present. Deterministic: the same issue always yields the same
// text. The block ends with a single trailing newline.
func Render(issue domain.Issue) string {
	lines := []string{
		fmt.Sprintf("## #%d: %s", issue.Index, issue.Title),
		Marker(issue.Index),
	}

	if body := strings.TrimSpace(issue.Body); body != "" {
		lines = append(lines, body)
	}

	if len(issue.Attachments) > 0 {
		lines = append(lines, "", "### Attachments")
		for _, att := range issue.Attachments {
			if att.IsImage() {
				lines = append(lines, fmt.Sprintf("![%s](%s)", att.Name, att.Path))
			} else {
				lines = append(lines, fmt.Sprintf("- [%s](%s)", att.Name, att.Path))
			}
		}
	}

	if comments := renderComments(issue.Comments); len(comments) > 0 {
		lines = append(lines, "", "### Comments")
		lines = append(lines, comments...)
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// renderComments formats each comment as a bolded author line followed
// by its body. Comments with empty bodies are skipped.
func renderComments(comments []domain.Comment) []string {
	var lines []string
	for _, comment := range comments {
		body := strings.TrimSpace(comment.Body)
		if body == "" {
			continue
		}
		author := comment.Author
		if author == "" {
			author = "Unknown"
		}
		lines = append(lines, "", fmt.Sprintf("**%s:**", author), body)
	}
	return lines
}
