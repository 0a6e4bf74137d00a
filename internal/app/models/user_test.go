package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHasRole(t *testing.T) {
	role := RoleStaff
	user := &User{ID: "u1", Role: &role}

	assert.True(t, user.HasRole(RoleStaff))
	assert.True(t, user.HasRole(RoleAdmin, RoleStaff))
	assert.False(t, user.HasRole(RoleStudent))

	var nilUser *User
	assert.False(t, nilUser.HasRole(RoleAdmin))
	assert.False(t, (&User{ID: "u2"}).HasRole(RoleAdmin))
}

func TestDocumentSetEmptyStoredAsNull(t *testing.T) {
	var empty DocumentSet
	raw, err := empty.MarshalDB()
	require.NoError(t, err)
	assert.Nil(t, raw)

	// NULL column round-trips back to a nil set
	var restored DocumentSet
	require.NoError(t, restored.UnmarshalDB(nil))
	assert.Nil(t, restored)
}

func TestDocumentSetRoundTrip(t *testing.T) {
	docs := DocumentSet{
		"birthCert": {
			URL:        "http://localhost:8080/uploads/students/s1/abc.pdf",
			FileName:   "birth-cert.pdf",
			FileSize:   52341,
			MimeType:   "application/pdf",
			UploadedAt: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
		},
	}

	raw, err := docs.MarshalDB()
	require.NoError(t, err)
	require.NotNil(t, raw)

	var restored DocumentSet
	require.NoError(t, restored.UnmarshalDB(raw))
	require.Contains(t, restored, "birthCert")
	assert.Equal(t, "birth-cert.pdf", restored["birthCert"].FileName)
	assert.Equal(t, int64(52341), restored["birthCert"].FileSize)
}
