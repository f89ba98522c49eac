package core

// Target is a validated screening target. It is constructed only by target
// validation; a zero Target never escapes a failed validation.
type Target struct {
	// ID is the canonical 4-character structure identifier, always upper case.
	ID string `json:"id"`
	// Name is the human protein name ("EGFR"), or "Unknown" when the caller
	// supplied a raw structure ID with no known name.
	Name string `json:"name"`
}

// IsZero reports whether the target carries no identity.
func (t Target) IsZero() bool { return t.ID == "" }

// String renders "NAME (ID)" for logs and reports.
func (t Target) String() string {
	if t.Name == "" {
		return t.ID
	}
	return t.Name + " (" + t.ID + ")"
}
