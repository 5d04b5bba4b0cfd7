package store

// Persisted keys. Each key is an independent JSON record.
const (
	KeyFavorites      = "@mm_favs"
	KeyRatings        = "@mm_ratings"
	KeyProfile        = "@mm_profile"
	KeyMine           = "@mm_mine"
	KeyRecentViews    = "@mm_recent_views"
	KeyComments       = "@mm_comments"
	KeyOnboarded      = "@mm_onboarded"
	KeyProfileName    = "@mm_profile_name"
	KeyProfileDOB     = "@mm_profile_dob"
	KeyRecentSearches = "@mm_recent_searches"
)

// AllKeys is the full key space, in hydration order.
var AllKeys = []string{
	KeyOnboarded,
	KeyProfileName,
	KeyProfileDOB,
	KeyProfile,
	KeyMine,
	KeyFavorites,
	KeyRatings,
	KeyComments,
	KeyRecentViews,
	KeyRecentSearches,
}
