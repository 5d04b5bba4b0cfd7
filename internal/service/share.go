package service

import (
	"strconv"
	"strings"

	"github.com/pageza/mixmaster/backend/internal/model"
)

// ShareText formats a recipe for the system share sheet.
func (s *MixService) ShareText(id string) (string, error) {
	r, err := s.Recipe(id)
	if err != nil {
		return "", err
	}
	return FormatShare(r), nil
}

// FormatShare renders name, type, ingredients and instructions as plain
// text.
func FormatShare(r model.Recipe) string {
	var b strings.Builder
	b.WriteString("🍸 " + r.Name + "\n")
	b.WriteString(r.DisplayType() + "\n\n")
	b.WriteString("Ingredients:\n")
	for i, ing := range r.Ingredients {
		if i > 0 {
			b.WriteString("\n")
		}
		amount := ""
		if ing.Amount != nil && *ing.Amount != 0 {
			amount = strconv.FormatFloat(*ing.Amount, 'f', -1, 64)
		}
		b.WriteString(strings.TrimSpace("• " + amount + " " + ing.Unit + " " + ing.Name))
	}
	b.WriteString("\n\nInstructions:\n")
	b.WriteString(r.Instructions)
	return b.String()
}
