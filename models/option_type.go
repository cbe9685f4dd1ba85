package models

import (
	"fmt"
	"strings"
)

type OptionType int

const (
	Call OptionType = iota
	Put
)

// Toggle returns the opposite option type.
func (t OptionType) Toggle() OptionType {
	if t == Call {
		return Put
	}
	return Call
}

func (t OptionType) String() string {
	switch t {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return fmt.Sprintf("OptionType(%d)", int(t))
	}
}

func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}
	return Call, fmt.Errorf("unknown option type %q", s)
}
