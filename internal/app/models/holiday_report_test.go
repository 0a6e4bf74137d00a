package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHolidayReportOwnedBy(t *testing.T) {
	owner := "s1"
	report := &HolidayReport{ID: "h1", StudentID: &owner}

	assert.True(t, report.OwnedBy("s1"))
	assert.False(t, report.OwnedBy("s2"))
	assert.False(t, report.OwnedBy(""))

	// A report without a linked student is owned by nobody
	orphan := &HolidayReport{ID: "h2"}
	assert.False(t, orphan.OwnedBy("s1"))
	assert.False(t, orphan.OwnedBy(""))

	var nilReport *HolidayReport
	assert.False(t, nilReport.OwnedBy("s1"))
}

func TestHolidayReportIsPending(t *testing.T) {
	pending := HolidayStatusPending
	approved := HolidayStatusApproved

	assert.True(t, (&HolidayReport{Status: &pending}).IsPending())
	assert.False(t, (&HolidayReport{Status: &approved}).IsPending())
	assert.True(t, (&HolidayReport{}).IsPending())
}
