package model

// Scope identifies whose data a call works on. Every cached row is keyed by
// the Canvas domain and user id.
type Scope struct {
	UserID int64
	Domain string
}

// Valid reports whether the scope can key cached rows.
func (sc Scope) Valid() bool {
	return sc.UserID != 0 && sc.Domain != ""
}
