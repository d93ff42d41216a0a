package domain

import (
	"errors"
	"regexp"
	"strings"
)

// Handle is a normalized (lowercase) unique username.
type Handle string

var ErrHandleInvalid = errors.New("handle format invalid")

const (
	handleMinLen = 3
	handleMaxLen = 25
)

// handleAlphabet restricts handles to letters, digits and the two separators.
var handleAlphabet = regexp.MustCompile(`^[a-z0-9._]+$`)

func isSeparator(b byte) bool {
	return b == '.' || b == '_'
}

// ParseHandle lowercases raw and checks it against the handle format:
// 3-25 characters from [a-z0-9._], no leading or trailing separator,
// no two consecutive separators. It is a total function: every input
// yields either a valid Handle or ErrHandleInvalid, with no side effects.
func ParseHandle(raw string) (Handle, error) {
	h := strings.ToLower(raw)

	if len(h) < handleMinLen || len(h) > handleMaxLen {
		return "", ErrHandleInvalid
	}
	if !handleAlphabet.MatchString(h) {
		return "", ErrHandleInvalid
	}
	if isSeparator(h[0]) || isSeparator(h[len(h)-1]) {
		return "", ErrHandleInvalid
	}
	for i := 0; i < len(h)-1; i++ {
		if isSeparator(h[i]) && isSeparator(h[i+1]) {
			return "", ErrHandleInvalid
		}
	}

	return Handle(h), nil
}

func (h Handle) String() string { return string(h) }
