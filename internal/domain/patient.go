package domain

// Patient holds the personal data required to reserve a slot.
// All fields are mandatory for a reservation.
type Patient struct {
	Name       string `json:"name"`
	SecondName string `json:"secondName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}
