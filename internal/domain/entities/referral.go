package entities

import "time"

// Referral records a revealed professional contact. Created as a side effect
// of quote acceptance; failures writing it never fail the acceptance itself.

type Referral struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	ProfessionalID   string    `json:"professional_id"`
	ProfessionalName string    `json:"professional_name"`
	Phone            string    `json:"phone"`
	Profession       string    `json:"profession"`
	CreatedAt        time.Time `json:"created_at"`
}
