package codegen

import "fmt"

// Generation-time errors. Each one aborts generation immediately; no output is
// written. The messages are the user-visible forms printed by the CLI.

// MissingEntrySymbolError is returned when the grammar has no pub production.
type MissingEntrySymbolError struct{}

func (e *MissingEntrySymbolError) Error() string {
	return "not found pub function"
}

// UnknownTokenError is returned when a binding names a token that is not
// declared in the grammar's setting.
type UnknownTokenError struct {
	Name string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("not found %q's type", e.Name)
}

// UnknownNonterminalError is returned when a reference names a nonterminal
// that has no production.
type UnknownNonterminalError struct {
	Name string
}

func (e *UnknownNonterminalError) Error() string {
	return fmt.Sprintf("not found %q's name", e.Name)
}
