package game

// riskScores orders the remote service's probability labels from certain
// death to near-certain success. Labels the service has not shown before
// score 0, same as Impossible.
var riskScores = map[string]int{
	"Impossible":         0,
	"Suicide mission":    1,
	"Risky":              2,
	"Playing with fire":  3,
	"Gamble":             4,
	"Rather detrimental": 5,
	"Hmmm....":           6,
	"Quite likely":       7,
	"Walk in the park":   8,
	"Piece of cake":      9,
}

func RiskScore(label string) int {
	return riskScores[label]
}
