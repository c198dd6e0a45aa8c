package core

import "fmt"

// Translator looks up user-facing strings. The message id is the English
// text; vars are applied printf-style after lookup.
type Translator interface {
	Get(id string, vars ...any) string
}

// PlainText is a Translator that returns ids unchanged.
type PlainText struct{}

// Get formats id with vars.
func (PlainText) Get(id string, vars ...any) string {
	if len(vars) == 0 {
		return id
	}
	return fmt.Sprintf(id, vars...)
}
