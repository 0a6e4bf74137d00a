package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func regWithStatus(status RegistrationStatus) *ExamRegistration {
	return &ExamRegistration{ID: "r1", ExamID: "e1", Status: &status}
}

func TestExamRegistrationHoldsSlot(t *testing.T) {
	assert.True(t, regWithStatus(RegistrationStatusPending).HoldsSlot())
	assert.True(t, regWithStatus(RegistrationStatusConfirmed).HoldsSlot())
	assert.False(t, regWithStatus(RegistrationStatusCancelled).HoldsSlot())

	// A waitlisted registration is active but holds no slot; cancelling
	// it must not promote another waitlisted registration.
	waitlisted := regWithStatus(RegistrationStatusWaitlisted)
	assert.True(t, waitlisted.IsActive())
	assert.False(t, waitlisted.HoldsSlot())

	// A missing status is treated as PENDING
	assert.True(t, (&ExamRegistration{ID: "r2"}).HoldsSlot())

	var nilReg *ExamRegistration
	assert.False(t, nilReg.HoldsSlot())
	assert.False(t, nilReg.IsActive())
}
