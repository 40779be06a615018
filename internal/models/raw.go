package models

// RawStudent is one unvalidated candidate record, as read from a CSV file or
// another import source. NewStudent turns it into a Student.
type RawStudent struct {
	Name       string
	Roll       string
	Department string
	Email      string
	Phone      string
}

// Validate runs the raw record through the student validator.
func (r RawStudent) Validate() (*Student, error) {
	return NewStudent(r.Name, r.Roll, r.Department, r.Email, r.Phone)
}
