package domain

// Registration is one stored sign-up. EventID travels as "id" on the wire,
// EventName and CreatedAt are derived when the registration is written.
type Registration struct {
	EventID     int    `json:"id"`
	StudentName string `json:"studentName"`
	Roll        string `json:"roll"`
	YearBranch  string `json:"yearBranch"`
	Tickets     int    `json:"tickets"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	EventName   string `json:"eventName"`
	CreatedAt   string `json:"createdAt"`
}

// DefaultTickets applies when a payload carries no usable ticket count.
const DefaultTickets = 1

// CreatedAtLayout is the display format of Registration.CreatedAt.
const CreatedAtLayout = "1/2/2006"
