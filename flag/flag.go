package flag

import (
	// Stdlib
	"fmt"
	"strings"
)

// StringEnumFlag is a flag value that accepts only one of the given values.
// It implements pflag.Value so that it can be used with cobra commands.
type StringEnumFlag struct {
	allowed []string
	value   string
}

func NewStringEnumFlag(allowed []string, defaultValue string) *StringEnumFlag {
	return &StringEnumFlag{allowed, defaultValue}
}

func (flag *StringEnumFlag) Value() string {
	return flag.value
}

func (flag *StringEnumFlag) String() string {
	return flag.value
}

func (flag *StringEnumFlag) Set(value string) error {
	for _, v := range flag.allowed {
		if v == value {
			flag.value = value
			return nil
		}
	}
	return fmt.Errorf("value not allowed: %v (allowed: %v)", value, strings.Join(flag.allowed, ", "))
}

func (flag *StringEnumFlag) Type() string {
	return "{" + strings.Join(flag.allowed, "|") + "}"
}
