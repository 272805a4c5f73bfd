package entity

// Status is the shared active/inactive lifecycle state used by users,
// plans, buildings, visitors and doorman assignments.
type Status string

const (
	// StatusActive marks a record as usable.
	StatusActive Status = "active"
	// StatusInactive marks a record as disabled without deleting it.
	StatusInactive Status = "inactive"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}
