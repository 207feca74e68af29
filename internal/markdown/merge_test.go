package markdown

import (
	"errors"
	"strings"
	"testing"

	"issuemd/internal/domain"
)

func block(index int64, title, body string) string {
	return Render(domain.Issue{Index: index, Title: title, Body: body})
}

func TestMerge_AppendsAfterExistingContent(t *testing.T) {
	content := "# Notes\n"

	got, err := Merge(content, 5, block(5, "Crash on startup", "Boom."))
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if !strings.HasPrefix(got, "# Notes\n") {
		t.Errorf("expected document to still start with # Notes, got:\n%s", got)
	}
	if !strings.Contains(got, "## #5: Crash on startup") {
		t.Errorf("expected issue 5 block to be appended, got:\n%s", got)
	}
}

func TestMerge_AppendsToEmptyDocument(t *testing.T) {
	rendered := block(5, "Crash on startup", "Boom.")

	got, err := Merge("", 5, rendered)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if got != rendered {
		t.Errorf("Merge(\"\") = %q, want the block alone", got)
	}
}

func TestMerge_ReplacesExistingBlock(t *testing.T) {
	content := "# Notes\n\n" +
		block(5, "Bug A", "Old description.") +
		"\n## Scratch\nkeep me\n"

	got, err := Merge(content, 5, block(5, "Bug B", "New description."))
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if strings.Contains(got, "Bug A") || strings.Contains(got, "Old description.") {
		t.Errorf("expected old block to be replaced, got:\n%s", got)
	}
	if !strings.Contains(got, "## #5: Bug B") {
		t.Errorf("expected new block, got:\n%s", got)
	}
	if !strings.Contains(got, "## Scratch\nkeep me\n") {
		t.Errorf("expected trailing section to be preserved, got:\n%s", got)
	}
	if !strings.HasPrefix(got, "# Notes\n") {
		t.Errorf("expected leading content to be preserved, got:\n%s", got)
	}
}

func TestMerge_ReplacesBlockAtEndOfFile(t *testing.T) {
	content := "# Notes\n\n" + block(5, "Bug A", "Old.")

	got, err := Merge(content, 5, block(5, "Bug B", "New."))
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	want := "# Notes\n\n" + block(5, "Bug B", "New.")
	if got != want {
		t.Errorf("Merge() = %q, want %q", got, want)
	}
}

func TestMerge_IsIdempotent(t *testing.T) {
	rendered := block(5, "Crash on startup", "Boom.")

	once, err := Merge("# Notes\n", 5, rendered)
	if err != nil {
		t.Fatalf("first Merge failed: %v", err)
	}
	twice, err := Merge(once, 5, rendered)
	if err != nil {
		t.Fatalf("second Merge failed: %v", err)
	}

	if once != twice {
		t.Errorf("Merge is not idempotent:\nonce:\n%s\ntwice:\n%s", once, twice)
	}
}

func TestMerge_LeavesOtherBlocksUntouched(t *testing.T) {
	other := block(6, "Unrelated", "Do not touch.")
	content := other + "\n" + block(5, "Bug A", "Old.")

	got, err := Merge(content, 5, block(5, "Bug B", "New."))
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if !strings.HasPrefix(got, other) {
		t.Errorf("expected issue 6 block to be byte-identical, got:\n%s", got)
	}
}

func TestMerge_DoesNotMatchMarkerSubstrings(t *testing.T) {
	content := block(123, "Long running", "Still open.")

	got, err := Merge(content, 12, block(12, "Short one", "New issue."))
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if !strings.Contains(got, "## #123: Long running") {
		t.Errorf("expected issue 123 block to survive, got:\n%s", got)
	}
	if !strings.Contains(got, "## #12: Short one") {
		t.Errorf("expected issue 12 block to be appended, got:\n%s", got)
	}
	if strings.Count(got, Marker(123)) != 1 {
		t.Errorf("expected exactly one marker for issue 123, got:\n%s", got)
	}
}

func TestMerge_DuplicateMarkerFails(t *testing.T) {
	content := block(5, "First copy", "One.") + "\n" + block(5, "Second copy", "Two.")

	_, err := Merge(content, 5, block(5, "Update", "Three."))
	if err == nil {
		t.Fatal("expected duplicate marker error, got nil")
	}
	if !errors.Is(err, ErrDuplicateMarker) {
		t.Errorf("expected ErrDuplicateMarker, got %v", err)
	}
}

func TestExtractIssueIDs(t *testing.T) {
	content := "# Notes\n\n" +
		block(5, "A", "a") + "\n" +
		block(123, "B", "b") +
		"\nno marker here\n"

	ids := ExtractIssueIDs(content)

	if len(ids) != 2 || !ids[5] || !ids[123] {
		t.Errorf("ExtractIssueIDs() = %v, want {5, 123}", ids)
	}
}

func TestExtractIssueIDs_EmptyDocument(t *testing.T) {
	if ids := ExtractIssueIDs(""); len(ids) != 0 {
		t.Errorf("expected no ids in empty document, got %v", ids)
	}
}
