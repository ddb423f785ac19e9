package view

import (
	"testing"

	"event-portal/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFormatFee(t *testing.T) {
	assert.Equal(t, "Free", FormatFee(0))
	assert.Equal(t, "₹50", FormatFee(50))
	assert.Equal(t, "₹100", FormatFee(100))
	assert.Equal(t, "₹10,000", FormatFee(10000))
}

func TestFilterByEmail(t *testing.T) {
	regs := []domain.Registration{
		{StudentName: "a", Email: "Me@Example.com"},
		{StudentName: "b", Email: "other@example.com"},
		{StudentName: "c", Email: ""},
		{StudentName: "d", Email: "me@example.com"},
		{StudentName: "e", Email: "me@example.com.evil"},
	}

	got := FilterByEmail(regs, "ME@example.COM")

	if assert.Len(t, got, 2) {
		assert.Equal(t, "a", got[0].StudentName)
		assert.Equal(t, "d", got[1].StudentName)
	}
	assert.NotNil(t, FilterByEmail(nil, "x"))
}

func TestParseView(t *testing.T) {
	v, ok := ParseView("adminDashboard")
	assert.True(t, ok)
	assert.Equal(t, AdminDashboard, v)

	_, ok = ParseView("settings")
	assert.False(t, ok)
}
