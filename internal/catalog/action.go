package catalog

import (
	"fmt"
	"strings"
)

// ActionKind enumerates what clicking a catalog item does.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionClose
	ActionMessage
	ActionOpen
	ActionGrant
)

// Action is a parsed item action such as "open:tools".
type Action struct {
	Kind ActionKind
	Arg  string
}

// ParseAction understands "", "noop", "close", "grant", "message:<text>" and
// "open:<menu>".
func ParseAction(raw string) (Action, error) {
	raw = strings.TrimSpace(raw)
	verb, arg, hasArg := strings.Cut(raw, ":")
	verb = strings.ToLower(strings.TrimSpace(verb))
	arg = strings.TrimSpace(arg)
	switch verb {
	case "", "noop":
		return Action{Kind: ActionNone}, nil
	case "close":
		return Action{Kind: ActionClose}, nil
	case "grant":
		return Action{Kind: ActionGrant}, nil
	case "message":
		if !hasArg || arg == "" {
			return Action{}, fmt.Errorf("action %q needs text", raw)
		}
		return Action{Kind: ActionMessage, Arg: arg}, nil
	case "open":
		if !hasArg || arg == "" {
			return Action{}, fmt.Errorf("action %q needs a menu id", raw)
		}
		return Action{Kind: ActionOpen, Arg: arg}, nil
	default:
		return Action{}, fmt.Errorf("unknown action %q", raw)
	}
}
