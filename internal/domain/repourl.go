package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidRepoURL is returned when a repository URL cannot be parsed
// into an owner and a repository name.
var ErrInvalidRepoURL = errors.New("invalid repository URL")

// ParseRepoURL extracts owner and repository name from a Gitea repository
// URL such as https://gitea.example.com/owner/repo, with or without a
// trailing .git suffix.
func ParseRepoURL(raw string) (owner, repo string, err error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidRepoURL, raw)
	}

	path := strings.Trim(parsed.Path, "/")
	path = strings.TrimSuffix(path, ".git")

	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %s (expected https://gitea.example.com/owner/repo)", ErrInvalidRepoURL, raw)
	}

	return parts[0], parts[1], nil
}
