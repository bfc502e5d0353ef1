package scoring

// Canonical score labels, index by score.
var scoreLabels = [...]string{
	"Very weak",
	"Weak",
	"Fair",
	"Strong",
	"Very strong",
}

// ScoreLabel returns the canonical English label for a 0-4 score.
func ScoreLabel(score int) string {
	if score < 0 {
		score = 0
	}
	if score >= len(scoreLabels) {
		score = len(scoreLabels) - 1
	}
	return scoreLabels[score]
}

// ScoreLabels lists the five canonical labels in score order.
func ScoreLabels() []string {
	labels := make([]string, len(scoreLabels))
	copy(labels, scoreLabels[:])
	return labels
}
