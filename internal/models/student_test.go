package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/studentdesk/internal/common"
)

func TestNewStudent_Normalization(t *testing.T) {
	s, err := NewStudent("  alice smith ", " cs001 ", "computer science", " Alice@Example.COM ", "")
	require.NoError(t, err)

	assert.Equal(t, "Alice Smith", s.Name)
	assert.Equal(t, "CS001", s.Roll)
	assert.Equal(t, "Computer Science", s.Department)
	assert.Equal(t, "alice@example.com", s.Email)
	assert.Equal(t, "", s.Phone)
	assert.Zero(t, s.ID)
}

// Re-validating a student's own fields must reproduce it exactly.
func TestNewStudent_Idempotent(t *testing.T) {
	s, err := NewStudent("bob lee", "EE-42_A", "electrical engineering", "bob@uni.edu", "+1 (555) 123-45")
	require.NoError(t, err)

	again, err := NewStudent(s.Name, s.Roll, s.Department, s.Email, s.Phone)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestNewStudent_RollCaseStable(t *testing.T) {
	a, err := NewStudent("A", "cs001", "CS", "a@x.io", "")
	require.NoError(t, err)
	b, err := NewStudent("B", "Cs001", "CS", "b@x.io", "")
	require.NoError(t, err)
	assert.Equal(t, a.Roll, b.Roll)
}

func TestNewStudent_FirstErrorWins(t *testing.T) {
	// Both name and email are invalid; name is checked first.
	_, err := NewStudent("", "cs001", "CS", "not-an-email", "")
	require.Error(t, err)
	assert.Equal(t, "Name cannot be empty", err.Error())
}

func TestNewStudent_FieldRules(t *testing.T) {
	tests := []struct {
		name    string
		fields  [5]string
		wantErr string
	}{
		{"empty name", [5]string{"  ", "CS001", "CS", "a@x.io", ""}, "Name cannot be empty"},
		{"empty roll", [5]string{"Alice", "", "CS", "a@x.io", ""}, "Roll number cannot be empty"},
		{"bad roll", [5]string{"Alice", "CS 001", "CS", "a@x.io", ""}, "Roll number can only contain letters, numbers, hyphens, and underscores"},
		{"empty department", [5]string{"Alice", "CS001", " ", "a@x.io", ""}, "Department cannot be empty"},
		{"empty email", [5]string{"Alice", "CS001", "CS", "", ""}, "Email cannot be empty"},
		{"bad email", [5]string{"Alice", "CS001", "CS", "alice@", ""}, "Invalid email format"},
		{"bad email no tld", [5]string{"Alice", "CS001", "CS", "alice@host", ""}, "Invalid email format"},
		{"short phone", [5]string{"Alice", "CS001", "CS", "a@x.io", "123"}, "Invalid phone number format"},
		{"phone with letters", [5]string{"Alice", "CS001", "CS", "a@x.io", "555-CALL-NOW"}, "Invalid phone number format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStudent(tt.fields[0], tt.fields[1], tt.fields[2], tt.fields[3], tt.fields[4])
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.True(t, errors.Is(err, common.ErrValidation))
		})
	}
}

func TestNewStudent_PhoneFormats(t *testing.T) {
	for _, phone := range []string{"5551234", "+15551234567", "(555) 123-4567", "555 123 4567"} {
		_, err := NewStudent("Alice", "CS001", "CS", "a@x.io", phone)
		assert.NoError(t, err, phone)
	}
}

func TestNewUser(t *testing.T) {
	u, err := NewUser("  admin ", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, "admin123", u.Password)

	_, err = NewUser("", "pw")
	require.Error(t, err)
	assert.Equal(t, "Username cannot be empty", err.Error())

	_, err = NewUser("ab", "pw")
	require.Error(t, err)
	assert.Equal(t, "Username must be at least 3 characters long", err.Error())
}

func TestRawStudentValidate(t *testing.T) {
	raw := RawStudent{Name: "carol", Roll: "me-7", Department: "mech", Email: "c@x.io"}
	s, err := raw.Validate()
	require.NoError(t, err)
	assert.Equal(t, "ME-7", s.Roll)
}
