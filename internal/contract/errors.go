package contract

import (
	"fmt"
	"strings"
)

// AuthoringError reports a malformed contract declaration, detected when the
// Builder freezes. It is a programming (or manifest-authoring) mistake, not
// a construction-time condition.
type AuthoringError struct {
	Detail string
}

func (e *AuthoringError) Error() string {
	return "invalid contract: " + e.Detail
}

// MissingParametersError reports that one or more required parameters were
// absent from the supplied bag after defaults were applied. Names appear in
// declared order. TypeName is filled in by the constructor when the widget
// type is known.
type MissingParametersError struct {
	TypeName string
	Names    []string
}

func (e *MissingParametersError) Error() string {
	noun := "parameter"
	if len(e.Names) > 1 {
		noun = "parameters"
	}
	msg := fmt.Sprintf("Missing %s: %s", noun, strings.Join(e.Names, ", "))
	if e.TypeName == "" {
		return msg
	}
	return fmt.Sprintf("widget '%s': %s", e.TypeName, msg)
}

// UnknownParameterError reports a supplied parameter name that is outside
// the declared set of a type that has a contract. Accepted lists the type's
// full accepted-name set in declared order.
type UnknownParameterError struct {
	TypeName string
	Name     string
	Accepted []string
}

func (e *UnknownParameterError) Error() string {
	widget := e.TypeName
	if widget == "" {
		widget = "(anonymous)"
	}
	if len(e.Accepted) == 0 {
		return fmt.Sprintf("Unknown parameter '%s'. Widget '%s' accepts no parameters", e.Name, widget)
	}
	return fmt.Sprintf("Unknown parameter '%s'. Widget '%s' accepts only: %s",
		e.Name, widget, strings.Join(e.Accepted, ", "))
}
