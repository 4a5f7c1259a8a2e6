package entity

import "time"

// BirthDateLayout is the wire and storage layout of Child.BirthDate.
const BirthDateLayout = "2006-01-02"

// Parent owns zero or more children. It carries no attributes besides its id.
type Parent struct {
	ID int64
}

// Child is a profile record that must reference an existing Parent.
type Child struct {
	ID        int64
	Name      string
	BirthDate time.Time
	ParentID  int64
}

// ParseBirthDate parses a YYYY-MM-DD date.
func ParseBirthDate(s string) (time.Time, error) {
	t, err := time.Parse(BirthDateLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "birth_date", Message: "must be a date in YYYY-MM-DD format"}
	}
	return t, nil
}
