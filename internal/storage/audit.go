package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"event-portal/internal/domain"
)

// AuditLog appends one SQL INSERT statement per stored registration, giving a
// replayable trail next to the key-value store. Write failures are logged and
// never fail the registration.
type AuditLog struct {
	mu  sync.Mutex
	w   io.Writer
	log *slog.Logger
}

func NewAuditLog(w io.Writer, log *slog.Logger) *AuditLog {
	return &AuditLog{w: w, log: log}
}

// OpenAuditLog opens path for appending, creating it if needed.
func OpenAuditLog(path string, log *slog.Logger) (*AuditLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	return NewAuditLog(f, log), nil
}

// Record writes the INSERT statement for reg.
func (a *AuditLog) Record(reg domain.Registration) {
	stmt := fmt.Sprintf(
		"INSERT INTO registrations(student_name, event_name, tickets, email, phone) VALUES('%s','%s',%d,'%s','%s');\n",
		sqlQuote(reg.StudentName),
		sqlQuote(reg.EventName),
		reg.Tickets,
		sqlQuote(reg.Email),
		sqlQuote(reg.Phone),
	)

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := io.WriteString(a.w, stmt); err != nil {
		a.log.Error("failed to write audit log", "error", err)
	}
}

func (a *AuditLog) Close() error {
	if c, ok := a.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func sqlQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
