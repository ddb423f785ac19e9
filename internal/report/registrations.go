package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"event-portal/internal/domain"

	"github.com/dustin/go-humanize"
)

var registrationHeader = []string{"#", "Student", "Roll", "Event", "Tickets", "Email", "Phone", "Created"}

// WriteRegistrations prints regs as a table followed by a totals line.
func WriteRegistrations(w io.Writer, regs []domain.Registration) error {
	if len(regs) == 0 {
		_, err := fmt.Fprintln(w, "No registrations yet.")
		return err
	}

	rows := make([][]string, 0, len(regs))
	tickets := 0
	for i, r := range regs {
		tickets += r.Tickets
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.StudentName,
			r.Roll,
			r.EventName,
			strconv.Itoa(r.Tickets),
			r.Email,
			r.Phone,
			r.CreatedAt,
		})
	}

	lines := Table(registrationHeader, rows)
	lines = append(lines, "", Totals(len(regs), tickets))

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// Totals summarises a registration count and ticket sum.
func Totals(registrations, tickets int) string {
	return fmt.Sprintf("%s %s, %s %s",
		humanize.Comma(int64(registrations)), plural(registrations, "registration", "registrations"),
		humanize.Comma(int64(tickets)), plural(tickets, "ticket", "tickets"),
	)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
