// Package validators provides the checks run against raw field values.
//
// A Validator is a pure function of its configuration and the input string.
// Fields hold an ordered list of validators; the first one to fail decides
// the single message reported for that field.
package validators

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// Validator checks a raw value. It returns nil when the value is valid and
// an *Error carrying a user-facing message otherwise.
type Validator interface {
	Validate(data string) error
}

// Func adapts an ordinary function to the Validator interface.
type Func func(data string) error

// Validate calls f.
func (f Func) Validate(data string) error {
	return f(data)
}

// Error is a validation failure shown next to the offending field.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError creates a validation error with the given message.
func NewError(msg string) *Error {
	return &Error{Message: msg}
}

// Errorf creates a validation error with a formatted message.
func Errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is, or wraps, a validation error.
func IsValidationError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// Messages used by the built-in validators.
const (
	MsgRequired      = "Field is required"
	MsgOneOf         = "Value must be one of options"
	MsgPathUsed      = "Path is already used"
	MsgDirMissing    = "Dir doesn't exist"
	MsgNotDir        = "It's not a dir"
	MsgFileMissing   = "File doesn't exist"
	MsgNotFile       = "It's not a file"
	msgRegexMismatch = "Value %q does not match: %q regular exp."
)

type required struct{}

// Required fails on empty input.
var Required Validator = required{}

func (required) Validate(data string) error {
	if data == "" {
		return NewError(MsgRequired)
	}
	return nil
}

type oneOf struct {
	options []string
}

// OneOf fails unless the input equals one of options byte for byte.
func OneOf(options ...string) Validator {
	o := oneOf{options: make([]string, len(options))}
	copy(o.options, options)
	return o
}

func (o oneOf) Validate(data string) error {
	for _, option := range o.options {
		if option == data {
			return nil
		}
	}
	return NewError(MsgOneOf)
}

type regex struct {
	re *regexp.Regexp
}

// Regex compiles pattern into a validator that fails on non-matching input.
func Regex(pattern string) (Validator, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex validator %q: %w", pattern, err)
	}
	return regex{re: re}, nil
}

// MustRegex is like Regex but panics if the pattern does not compile.
func MustRegex(pattern string) Validator {
	v, err := Regex(pattern)
	if err != nil {
		panic(err)
	}
	return v
}

// RegexFrom wraps an already compiled expression.
func RegexFrom(re *regexp.Regexp) Validator {
	return regex{re: re}
}

func (r regex) Validate(data string) error {
	if r.re.MatchString(data) {
		return nil
	}
	return Errorf(msgRegexMismatch, data, r.re.String())
}

type pathFree struct{}

// PathFree fails when something already exists at the path.
var PathFree Validator = pathFree{}

func (pathFree) Validate(data string) error {
	if _, err := os.Lstat(data); err == nil {
		return NewError(MsgPathUsed)
	}
	return nil
}

type dirExists struct{}

// DirExists fails unless the path exists and is a directory.
var DirExists Validator = dirExists{}

func (dirExists) Validate(data string) error {
	info, err := os.Stat(data)
	if err != nil {
		return NewError(MsgDirMissing)
	}
	if !info.IsDir() {
		return NewError(MsgNotDir)
	}
	return nil
}

type fileExists struct{}

// FileExists fails unless the path exists and is a regular file.
var FileExists Validator = fileExists{}

func (fileExists) Validate(data string) error {
	info, err := os.Stat(data)
	if err != nil {
		return NewError(MsgFileMissing)
	}
	if !info.Mode().IsRegular() {
		return NewError(MsgNotFile)
	}
	return nil
}

// Chain runs validators in order and returns the first failure.
func Chain(validators ...Validator) Validator {
	return Func(func(data string) error {
		return Run(validators, data)
	})
}

// Run applies validators to data in order, stopping at the first failure.
func Run(validators []Validator, data string) error {
	for _, v := range validators {
		if err := v.Validate(data); err != nil {
			return err
		}
	}
	return nil
}
