package models

// Setting is one key/value row of the settings table, e.g. the
// maintenance-mode switch.
type Setting struct {
	Key   string
	Value string
}
