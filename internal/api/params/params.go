// Package params parses path and query parameters shared by the HTTP handlers.
package params

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/wb-go/wbf/ginext"
)

var ErrInvalid = errors.New("invalid parameter")

// ID parses a positive int64 path parameter.
func ID(c *ginext.Context, name string) (int64, error) {
	raw := c.Param(name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrInvalid, name)
	}

	return id, nil
}

// Int parses an optional integer query parameter bounded by [lo, hi].
func Int(c *ginext.Context, key string, def, lo, hi int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		return 0, fmt.Errorf("%w: %s must be an integer in [%d, %d]", ErrInvalid, key, lo, hi)
	}

	return v, nil
}

// Bool parses an optional boolean query parameter. Absent means nil.
func Bool(c *ginext.Context, key string) (*bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a boolean", ErrInvalid, key)
	}

	return &v, nil
}

// Page parses the skip/limit pair used by list endpoints.
func Page(c *ginext.Context, defLimit int) (offset, limit int, err error) {
	offset, err = Int(c, "skip", 0, 0, math.MaxInt32)
	if err != nil {
		return 0, 0, err
	}

	limit, err = Int(c, "limit", defLimit, 1, 1000)
	if err != nil {
		return 0, 0, err
	}

	return offset, limit, nil
}
