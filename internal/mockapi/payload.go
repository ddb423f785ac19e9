package mockapi

import (
	"bytes"
	"strconv"
	"strings"

	"event-portal/internal/domain"
)

// looseInt accepts a JSON number or a numeric string. Anything else,
// including null, decodes to zero instead of failing the whole payload.
type looseInt int

func (n *looseInt) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		*n = 0
		return nil
	}
	*n = looseInt(v)
	return nil
}

type registerRequest struct {
	EventID     looseInt `json:"id"`
	StudentName string   `json:"studentName"`
	Roll        string   `json:"roll"`
	YearBranch  string   `json:"yearBranch"`
	Tickets     looseInt `json:"tickets"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
}

func (req registerRequest) registration() domain.Registration {
	tickets := int(req.Tickets)
	if tickets <= 0 {
		tickets = domain.DefaultTickets
	}
	return domain.Registration{
		EventID:     int(req.EventID),
		StudentName: req.StudentName,
		Roll:        req.Roll,
		YearBranch:  req.YearBranch,
		Tickets:     tickets,
		Email:       req.Email,
		Phone:       req.Phone,
	}
}

// eventDraftRequest is the admin "add event" form.
type eventDraftRequest struct {
	Title         string `json:"title"         validate:"required"`
	Type          string `json:"type"`
	StartDatetime string `json:"startDatetime"`
	Venue         string `json:"venue"`
	Description   string `json:"description"`
}

func (r eventDraftRequest) draft() domain.EventDraft {
	return domain.EventDraft{
		Title:         r.Title,
		Type:          r.Type,
		StartDatetime: r.StartDatetime,
		Venue:         r.Venue,
		Description:   r.Description,
	}
}
