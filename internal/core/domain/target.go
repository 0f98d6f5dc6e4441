package domain

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Target is the Java language version the processed classes must run on.
type Target string

// DefaultTarget is used when no target is configured.
const DefaultTarget Target = "1.7"

var targetBytecodeVersions = map[Target]int{
	"1.5": 49,
	"1.6": 50,
	"1.7": 51,
	"1.8": 52,
}

// Targets returns the supported targets in ascending order.
func Targets() []Target {
	targets := make([]Target, 0, len(targetBytecodeVersions))
	for t := range targetBytecodeVersions {
		targets = append(targets, t)
	}
	slices.Sort(targets)
	return targets
}

// ParseTarget validates a raw target value.
// The returned error wraps ErrUnrecognizedTarget and enumerates the supported values.
func ParseTarget(raw string) (Target, error) {
	t := Target(raw)
	if _, ok := targetBytecodeVersions[t]; ok {
		return t, nil
	}

	names := make([]string, 0, len(targetBytecodeVersions))
	for _, v := range Targets() {
		names = append(names, string(v))
	}

	msg := fmt.Sprintf("Unrecognized target '%s'. Possible values are %s", raw, strings.Join(names, ", "))
	return "", zerr.With(zerr.Wrap(ErrUnrecognizedTarget, msg), "target", raw)
}

// BytecodeVersion returns the class file major version for the target, or 0 if unsupported.
func (t Target) BytecodeVersion() int {
	return targetBytecodeVersions[t]
}

// String returns the raw target value.
func (t Target) String() string {
	return string(t)
}
