package models

// User is the single local profile created during onboarding.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	JoinDate       string `json:"join_date"` // YYYY-MM-DD format
	Timezone       string `json:"timezone"`
	Onboarded      bool   `json:"onboarded"`
	AntiMotivation bool   `json:"anti_motivation"`
}
