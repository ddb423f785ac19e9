package view

import (
	"fmt"
	"strconv"
	"strings"

	"event-portal/internal/domain"

	"github.com/dustin/go-humanize"
)

const (
	defaultRules        = "Standard college rules apply."
	defaultCoordinators = "TBA"
	defaultPrizes       = "Certificates & Medals"
)

// FormatFee renders a fee in rupees with thousands grouping; zero is "Free".
func FormatFee(fee int) string {
	if fee <= 0 {
		return "Free"
	}
	return "₹" + humanize.Comma(int64(fee))
}

// FilterByEmail keeps the registrations whose email matches email ignoring
// case, in their original order.
func FilterByEmail(regs []domain.Registration, email string) []domain.Registration {
	out := make([]domain.Registration, 0)
	for _, r := range regs {
		if r.Email != "" && strings.EqualFold(r.Email, email) {
			out = append(out, r)
		}
	}
	return out
}

func newDetails(ev domain.Event) *Details {
	return &Details{
		ID:           ev.ID,
		Title:        ev.Title,
		Meta:         fmt.Sprintf("%s | %s | %s", ev.Type, ev.StartDatetime, ev.Venue),
		Description:  ev.Description,
		Rules:        orDefault(ev.Rules, defaultRules),
		Coordinators: orDefault(ev.Coordinators, defaultCoordinators),
		Prizes:       orDefault(ev.Prizes, defaultPrizes),
		Fee:          FormatFee(ev.Fee),
	}
}

func projections(events []domain.Event) ([]EventItem, []Highlight, []Option) {
	items := make([]EventItem, 0, len(events))
	highlights := make([]Highlight, 0, len(events))
	options := make([]Option, 0, len(events))
	for _, ev := range events {
		items = append(items, EventItem{
			ID:    ev.ID,
			Title: ev.Title,
			Meta:  ev.Type + " • " + ev.StartDatetime,
			Venue: ev.Venue,
		})
		highlights = append(highlights, Highlight{Title: ev.Title, Start: ev.StartDatetime})
		options = append(options, Option{ID: ev.ID, Title: ev.Title})
	}
	return items, highlights, options
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func itoa(n int) string { return strconv.Itoa(n) }
