package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanCategoryValid(t *testing.T) {
	assert.True(t, PlanHourly.Valid())
	assert.True(t, PlanDaily.Valid())
	assert.True(t, PlanMonthly.Valid())
	assert.False(t, PlanCategory("Weekly").Valid())
	assert.False(t, PlanCategory("hourly").Valid())
	assert.False(t, PlanCategory("").Valid())
}

func TestValidReferralSource(t *testing.T) {
	assert.True(t, ValidReferralSource(""))
	assert.True(t, ValidReferralSource("Google"))
	assert.True(t, ValidReferralSource("Friend"))
	assert.False(t, ValidReferralSource("Billboard"))
	assert.False(t, ValidReferralSource("google"))
}

func TestIsPerAttendeeTitle(t *testing.T) {
	assert.True(t, IsPerAttendeeTitle("Conferencing Room"))
	assert.True(t, IsPerAttendeeTitle("VIDEO CONFERENCING SUITE"))
	assert.False(t, IsPerAttendeeTitle("Executive Cabin"))
	assert.False(t, IsPerAttendeeTitle("Conference Hall"))
}
