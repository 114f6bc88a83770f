package storage

// Filter narrows a facility query. Nil fields do not filter; a non-nil empty
// string is an exact match against the empty string.
type Filter struct {
	// BoroughName matches the owning borough's nom exactly.
	BoroughName *string
	// Name matches the facility's own nom exactly.
	Name *string
	// BoroughUpdatedPrefix keeps facilities whose borough date_maj starts with it.
	BoroughUpdatedPrefix *string
	// DateHeureContains keeps ice rinks whose date_heure contains it. Ignored
	// for the other kinds.
	DateHeureContains *string
}

func (f Filter) joinsBorough() bool {
	return f.BoroughName != nil || f.BoroughUpdatedPrefix != nil
}

// Str is a convenience for building filters from literals.
func Str(s string) *string {
	return &s
}
