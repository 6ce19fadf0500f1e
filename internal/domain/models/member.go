// internal/domain/models/member.go
package models

// Member is a recently joined member shown in the members section.
// JoinDate is a display string (dd/mm/yyyy).
type Member struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Plan     string `json:"plan"`
	JoinDate string `json:"joinDate"`
}
