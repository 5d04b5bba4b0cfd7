package catalog

import "strings"

// Categories are the filter chips offered by the browse screens, in display
// order. "All" disables the category filter.
var Categories = []string{
	"All", "Vodka", "Gin", "Rum", "Tequila", "Whiskey", "Bourbon",
	"Rye", "Scotch", "Cognac", "Coffee", "Smoothie", "Slush",
}

const imageQuery = "?auto=format&fit=crop&w=1200&q=60"

var images = map[string]string{
	"vodka":    "https://images.unsplash.com/photo-1582106245688-9d3b7bd8768e" + imageQuery,
	"gin":      "https://images.unsplash.com/photo-1604908177223-e4f2eb4515b4" + imageQuery,
	"rum":      "https://images.unsplash.com/photo-1598679253544-3328b93e22ed" + imageQuery,
	"tequila":  "https://images.unsplash.com/photo-1582105933379-38b5fb6c3d3f" + imageQuery,
	"whiskey":  "https://images.unsplash.com/photo-1541976076758-347942db1970" + imageQuery,
	"coffee":   "https://images.unsplash.com/photo-1509042239860-f550ce710b93" + imageQuery,
	"smoothie": "https://images.unsplash.com/photo-1576402187878-974f70ff98e1" + imageQuery,
	"slush":    "https://images.unsplash.com/photo-1556679343-c7306c2e9f50" + imageQuery,
	"default":  "https://images.unsplash.com/photo-1551024709-8f23befc6cf7" + imageQuery,
}

// Gradient is a two-stop color ramp used behind recipe cards.
type Gradient [2]string

// ImageFor picks a stock image from the display type. Matching is by
// substring and the first rule wins, so "Ginger Rum" reads as gin.
func ImageFor(kind string) string {
	k := strings.ToLower(kind)
	switch {
	case strings.Contains(k, "vodka"):
		return images["vodka"]
	case strings.Contains(k, "gin"):
		return images["gin"]
	case strings.Contains(k, "rum"):
		return images["rum"]
	case strings.Contains(k, "tequila"):
		return images["tequila"]
	case containsAny(k, "whiskey", "bourbon", "rye"):
		return images["whiskey"]
	case containsAny(k, "coffee", "espresso"):
		return images["coffee"]
	case strings.Contains(k, "smoothie"):
		return images["smoothie"]
	case strings.Contains(k, "slush"):
		return images["slush"]
	default:
		return images["default"]
	}
}

// GradientFor picks the card colors from the display type.
func GradientFor(kind string) Gradient {
	k := strings.ToLower(kind)
	switch {
	case strings.Contains(k, "vodka"):
		return Gradient{"#7c3aed", "#db2777"}
	case strings.Contains(k, "gin"):
		return Gradient{"#3b82f6", "#10b981"}
	case strings.Contains(k, "rum"):
		return Gradient{"#8b5cf6", "#f59e0b"}
	case strings.Contains(k, "tequila"):
		return Gradient{"#06b6d4", "#ef4444"}
	case containsAny(k, "whiskey", "bourbon", "rye"):
		return Gradient{"#f97316", "#eab308"}
	case containsAny(k, "scotch", "cognac"):
		return Gradient{"#c084fc", "#fb923c"}
	case containsAny(k, "coffee", "espresso"):
		return Gradient{"#9a6c3a", "#3f2f25"}
	case strings.Contains(k, "smoothie"):
		return Gradient{"#22c55e", "#06b6d4"}
	case strings.Contains(k, "slush"):
		return Gradient{"#0ea5e9", "#9333ea"}
	default:
		return Gradient{"#475569", "#334155"}
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
