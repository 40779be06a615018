// Package models defines the Student and User records together with their
// validating constructors. A value that exists in memory is always fully
// validated: construction normalizes every field and fails atomically with
// the first violated rule.
package models

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrijs2005/studentdesk/internal/common"
)

var (
	rollPattern  = regexp.MustCompile(`^[A-Z0-9\-_]+$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{7,15}$`)
)

// Student is one enrolled student. ID is zero until the store assigns it and
// immutable afterwards.
type Student struct {
	ID         int64
	Name       string
	Roll       string
	Department string
	Email      string
	Phone      string
}

// NewStudent validates raw field values and returns a normalized Student.
// Fields are checked in a fixed order (name, roll, department, email, phone)
// and the first violated rule determines the returned error. Normalization
// (trim, case folding) happens before the pattern checks.
func NewStudent(name, roll, department, email, phone string) (*Student, error) {
	s := &Student{}
	var err error
	if s.Name, err = validateName(name); err != nil {
		return nil, err
	}
	if s.Roll, err = validateRoll(roll); err != nil {
		return nil, err
	}
	if s.Department, err = validateDepartment(department); err != nil {
		return nil, err
	}
	if s.Email, err = validateEmail(email); err != nil {
		return nil, err
	}
	if s.Phone, err = validatePhone(phone); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Student) String() string {
	return fmt.Sprintf("Student(%s: %s, %s)", s.Roll, s.Name, s.Department)
}

func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &common.ValidationError{Field: "name", Message: "Name cannot be empty"}
	}
	return titleCase(name), nil
}

func validateRoll(roll string) (string, error) {
	roll = strings.ToUpper(strings.TrimSpace(roll))
	if roll == "" {
		return "", &common.ValidationError{Field: "roll", Message: "Roll number cannot be empty"}
	}
	if !rollPattern.MatchString(roll) {
		return "", &common.ValidationError{
			Field:   "roll",
			Message: "Roll number can only contain letters, numbers, hyphens, and underscores",
		}
	}
	return roll, nil
}

func validateDepartment(department string) (string, error) {
	department = strings.TrimSpace(department)
	if department == "" {
		return "", &common.ValidationError{Field: "department", Message: "Department cannot be empty"}
	}
	return titleCase(department), nil
}

func validateEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", &common.ValidationError{Field: "email", Message: "Email cannot be empty"}
	}
	if !emailPattern.MatchString(email) {
		return "", &common.ValidationError{Field: "email", Message: "Invalid email format"}
	}
	return email, nil
}

// validatePhone accepts an empty value: phone is optional and the empty
// string means "not provided".
func validatePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", nil
	}
	if !phonePattern.MatchString(phone) {
		return "", &common.ValidationError{Field: "phone", Message: "Invalid phone number format"}
	}
	return phone, nil
}
