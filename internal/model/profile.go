package model

// DOB holds the birthday exactly as entered during onboarding.
type DOB struct {
	Month string `json:"month"`
	Day   string `json:"day"`
	Year  string `json:"year"`
}

// Profile is the local, single-user profile.
type Profile struct {
	Name string `json:"name"`
	DOB  *DOB   `json:"dob"`
}
