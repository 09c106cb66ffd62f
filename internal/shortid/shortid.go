// Package shortid generates and validates the public identifiers used in
// share links such as /m/{shortId}.
package shortid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Length is the size of a personal page short id.
const Length = 8

var valid = regexp.MustCompile(`^[A-Za-z0-9_-]{8}$`)

// New returns a random URL-safe short id.
func New() (string, error) {
	id, err := gonanoid.New(Length)
	if err != nil {
		return "", fmt.Errorf("generate short id: %w", err)
	}
	return id, nil
}

// Valid reports whether s has the shape of a short id.
func Valid(s string) bool {
	return valid.MatchString(s)
}

const upperAlnum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Credit returns the reference of a credit purchase order: CRED, the
// base-36 millisecond clock and three random characters.
func Credit(now time.Time) (string, error) {
	suffix, err := gonanoid.Generate(upperAlnum, 3)
	if err != nil {
		return "", fmt.Errorf("generate credit id: %w", err)
	}
	return "CRED" + strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)) + suffix, nil
}
