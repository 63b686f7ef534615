package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bigredeye/gradebook/internal/models"
)

// parseScores turns ["Math=95", "Art=70.5"] into a score batch. Later
// entries for the same subject win.
func parseScores(pairs []string) (models.Scores, error) {
	scores := make(models.Scores, len(pairs))
	for _, pair := range pairs {
		pos := strings.LastIndexByte(pair, '=')
		if pos <= 0 {
			return nil, errors.Errorf("Invalid score %q, expected Subject=Score", pair)
		}
		subject := strings.TrimSpace(pair[:pos])
		score, err := strconv.ParseFloat(strings.TrimSpace(pair[pos+1:]), 64)
		if len(subject) == 0 || err != nil {
			return nil, errors.Errorf("Invalid score %q, expected Subject=Score", pair)
		}
		scores[subject] = score
	}
	return scores, nil
}
