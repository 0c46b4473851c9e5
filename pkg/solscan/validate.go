package solscan

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

var (
	// ErrMissingParam reports a required identifier that was empty.
	ErrMissingParam = errors.New("missing required parameter")

	// ErrInvalidBound reports a numeric parameter that must be positive.
	ErrInvalidBound = errors.New("parameter must be positive")
)

// requireString guards identifiers (account, tokenAddress, signature)
// before any network call.
func requireString(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrMissingParam, name)
	}
	return nil
}

func requirePositive(name string, value int64) error {
	if value <= 0 {
		return fmt.Errorf("%w: %s=%d", ErrInvalidBound, name, value)
	}
	return nil
}

// query returns a key=value fragment with the value percent-encoded.
func query(key, value string) string {
	return key + "=" + url.QueryEscape(value)
}

func queryInt(key string, value int64) string {
	return key + "=" + strconv.FormatInt(value, 10)
}
