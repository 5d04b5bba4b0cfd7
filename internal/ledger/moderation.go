package ledger

import (
	"fmt"
	"regexp"
	"strings"
)

// Policy decides what happens to a comment containing a blocked word.
type Policy string

const (
	// PolicyReject refuses the comment.
	PolicyReject Policy = "reject"
	// PolicyMask accepts the comment with blocked words replaced.
	PolicyMask Policy = "mask"
)

const (
	mask              = "****"
	moderationMessage = "Keep it respectful — your comment contains blocked words."
)

// BlockedWords are matched as whole words, ignoring case.
var BlockedWords = []string{"shit", "fuck", "bitch", "asshole", "bastard", "cunt"}

var blockedPattern = regexp.MustCompile(`(?i)\b(` + strings.Join(BlockedWords, "|") + `)\b`)

// ModerationError carries the message shown to the commenter.
type ModerationError struct {
	Message string
}

func (e *ModerationError) Error() string {
	return e.Message
}

// ParsePolicy accepts "reject" or "mask". Empty means reject.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyReject, nil
	case PolicyReject, PolicyMask:
		return p, nil
	default:
		return "", fmt.Errorf("unknown moderation policy %q", s)
	}
}

// ContainsBlocked reports whether text has a blocked whole word.
func ContainsBlocked(text string) bool {
	return blockedPattern.MatchString(text)
}

// Mask replaces every blocked whole word with ****.
func Mask(text string) string {
	return blockedPattern.ReplaceAllString(text, mask)
}

// Moderate applies the policy to already trimmed text.
func (p Policy) Moderate(text string) (string, error) {
	if !ContainsBlocked(text) {
		return text, nil
	}
	if p == PolicyMask {
		return Mask(text), nil
	}
	return "", &ModerationError{Message: moderationMessage}
}
