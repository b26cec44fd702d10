package game

import (
	"encoding/base64"
	"strconv"
	"unicode/utf8"
)

// DecodeText reverses the remote service's base64 armor. Obfuscation is
// advisory, not a contract: malformed or already-plain input comes back
// unchanged rather than failing.
func DecodeText(s string) string {
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil || !utf8.Valid(decoded) {
		return s
	}
	return string(decoded)
}

// Decode builds a plain Quest from a wire quest. An obfuscated quest has all
// four armored fields decoded in one step so the result is never half-plain;
// in particular the decoded id is the one a later attempt must use.
func Decode(raw RawQuest) Quest {
	q := Quest{
		ID:          raw.ID,
		Description: raw.Description,
		ExpiresIn:   raw.ExpiresIn,
		RiskLevel:   raw.RiskLevel,
	}
	rewardText := raw.Reward
	if raw.Obfuscated {
		q.ID = DecodeText(raw.ID)
		q.Description = DecodeText(raw.Description)
		q.RiskLevel = DecodeText(raw.RiskLevel)
		q.WasObfuscated = true
		rewardText = DecodeText(raw.Reward)
	}
	q.Reward = parseReward(rewardText, raw.Reward)
	return q
}

// parseReward keeps the raw value as fallback when the decoded text is not a
// number. A raw value that is not a number either yields 0, which ranks the
// quest last on reward ties; the remote has only ever sent decimal rewards.
func parseReward(text, fallback string) int {
	if n, err := strconv.Atoi(text); err == nil {
		return n
	}
	if n, err := strconv.Atoi(fallback); err == nil {
		return n
	}
	return 0
}
