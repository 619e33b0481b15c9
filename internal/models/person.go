package models

// Person represents one participant in a split.
// Identity is solely by ID; two people may share a display name.
type Person struct {
	// ID is the unique identifier for the person (UUID format).
	ID string

	// Name is the trimmed, non-empty display name.
	Name string
}
