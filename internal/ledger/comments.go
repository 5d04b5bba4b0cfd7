package ledger

import "strings"

const MaxComments = 40

// Comments maps a recipe id to its comments, oldest first.
type Comments map[string][]string

// Post trims raw, moderates it under policy and returns a copy with the
// result appended. Blank text is ignored: the ledger comes back unchanged
// with posted false.
func (c Comments) Post(recipeID, raw string, policy Policy) (out Comments, posted bool, err error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return c, false, nil
	}
	text, err = policy.Moderate(text)
	if err != nil {
		return c, false, err
	}

	out = make(Comments, len(c)+1)
	for id, list := range c {
		out[id] = list
	}
	list := append(append([]string(nil), c[recipeID]...), text)
	if len(list) > MaxComments {
		list = list[len(list)-MaxComments:]
	}
	out[recipeID] = list
	return out, true, nil
}

// For returns the comments on a recipe.
func (c Comments) For(recipeID string) []string {
	return append([]string{}, c[recipeID]...)
}
