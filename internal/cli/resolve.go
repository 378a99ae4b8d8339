package cli

import (
	"context"
	"fmt"
	"strings"
)

// shortID trims a UUID to its first block for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// resolveObjectiveID resolves user input against a company's objectives:
// exact UUID first, then unique UUID prefix, then unique title match.
func resolveObjectiveID(ctx context.Context, app *App, company, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("objective is required")
	}

	objectives, err := app.Objectives.ListByCompany(ctx, company)
	if err != nil {
		return "", err
	}

	for _, o := range objectives {
		if o.ID == input {
			return o.ID, nil
		}
	}

	var matches []string
	for _, o := range objectives {
		if strings.HasPrefix(o.ID, input) {
			matches = append(matches, o.ID)
		}
	}
	if len(matches) == 0 {
		for _, o := range objectives {
			if strings.EqualFold(o.Title, input) {
				matches = append(matches, o.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("objective not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("objective %q is ambiguous (%d matches)", input, len(matches))
	}
}
