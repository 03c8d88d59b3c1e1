package domain

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// MaxSubscriberNameLength is the maximum number of characters in a subscriber name.
const MaxSubscriberNameLength = 256

// forbiddenNameChars are rejected anywhere in a subscriber name.
const forbiddenNameChars = `/()"<>\{}`

// Validation errors.
var (
	ErrInvalidEmail = errors.New("invalid subscriber email")
	ErrInvalidName  = errors.New("invalid subscriber name")
)

var emailValidator = validator.New()

// SubscriberEmail is a syntactically valid email address.
// The zero value is not valid; use ParseSubscriberEmail.
type SubscriberEmail struct {
	value string
}

// ParseSubscriberEmail validates raw and returns it as a SubscriberEmail.
// The address is kept verbatim: no trimming, no case folding.
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	if !utf8.ValidString(raw) {
		return SubscriberEmail{}, ErrInvalidEmail
	}
	if err := emailValidator.Var(raw, "required,email"); err != nil {
		return SubscriberEmail{}, ErrInvalidEmail
	}
	return SubscriberEmail{value: raw}, nil
}

// String returns the email address.
func (e SubscriberEmail) String() string {
	return e.value
}

// SubscriberName is a display name safe to store and render.
// The zero value is not valid; use ParseSubscriberName.
type SubscriberName struct {
	value string
}

// ParseSubscriberName validates raw and returns it as a SubscriberName.
// Checks run against the trimmed input, but the original string is kept.
func ParseSubscriberName(raw string) (SubscriberName, error) {
	if !utf8.ValidString(raw) {
		return SubscriberName{}, ErrInvalidName
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return SubscriberName{}, ErrInvalidName
	}

	if characterCount(trimmed) > MaxSubscriberNameLength {
		return SubscriberName{}, ErrInvalidName
	}

	for _, r := range trimmed {
		if unicode.IsControl(r) || r == '\u2028' || r == '\u2029' {
			return SubscriberName{}, ErrInvalidName
		}
		if strings.ContainsRune(forbiddenNameChars, r) {
			return SubscriberName{}, ErrInvalidName
		}
	}

	return SubscriberName{value: raw}, nil
}

// String returns the name as submitted.
func (n SubscriberName) String() string {
	return n.value
}

// characterCount counts NFC segments, so a base letter and its combining
// marks count as one character.
func characterCount(s string) int {
	var it norm.Iter
	it.InitString(norm.NFC, s)

	n := 0
	for !it.Done() {
		it.Next()
		n++
	}
	return n
}

// NewSubscriber is a validated subscription request.
type NewSubscriber struct {
	Email SubscriberEmail
	Name  SubscriberName
}

// ParseNewSubscriber builds a NewSubscriber from raw form values.
// The email is checked first, so an invalid email is reported even when the
// name is invalid too.
func ParseNewSubscriber(rawEmail, rawName string) (NewSubscriber, error) {
	email, err := ParseSubscriberEmail(rawEmail)
	if err != nil {
		return NewSubscriber{}, err
	}

	name, err := ParseSubscriberName(rawName)
	if err != nil {
		return NewSubscriber{}, err
	}

	return NewSubscriber{Email: email, Name: name}, nil
}
