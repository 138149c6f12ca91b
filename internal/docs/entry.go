package docs

// Entry is the documentation record for one member.
type Entry struct {
	Key     Key
	Summary string
	Remarks string
	Params  map[string]string
}

// Param returns the help text for the named parameter, or "".
func (e Entry) Param(name string) string {
	return e.Params[name]
}
