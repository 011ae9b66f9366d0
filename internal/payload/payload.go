package payload

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var unitKeyReg = regexp.MustCompile(unitKeyRegexp)

// Checklist payload of one monitoring run.
// Duplicate keys resolve to the last occurrence.
type Checklist struct {
	values map[string]gjson.Result
	keys   []string
}

// Read returns json text of arg: file content if arg is path to existing file, arg itself otherwise.
func Read(arg string) (data []byte, source string, err error) {
	if info, statErr := os.Stat(arg); statErr == nil && !info.IsDir() {
		if data, err = os.ReadFile(arg); err != nil {
			err = fmt.Errorf("read payload file %s: %w", arg, err)
			return
		}
		source = SourceFile
		return
	}
	return []byte(arg), SourceArgument, nil
}

// Parse checklist from json object.
func Parse(data []byte) (c Checklist, err error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		err = errEmptyPayload
		return
	}
	if !gjson.ValidBytes(data) {
		err = errInvalidJSON
		return
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		err = errNotObject
		return
	}
	c.values = make(map[string]gjson.Result)
	root.ForEach(func(key, value gjson.Result) bool {
		if _, isExist := c.values[key.Str]; !isExist {
			c.keys = append(c.keys, key.Str)
		}
		c.values[key.Str] = value
		return true
	})
	return
}

// Load reads and parses checklist by cli argument.
func Load(arg string) (c Checklist, source string, err error) {
	data, source, err := Read(arg)
	if err != nil {
		return
	}
	c, err = Parse(data)
	return
}

// Present returns true if key holds a non-empty value:
// absent, null, false, 0, "" and empty containers count as empty.
func (c Checklist) Present(key string) bool {
	r := c.get(key)
	switch r.Type {
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	case gjson.True:
		return true
	case gjson.JSON:
		return notEmpty(r)
	}
	return false
}

// Value returns raw value by key for writing as is.
func (c Checklist) Value(key string) interface{} {
	r := c.get(key)
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		return r.Num
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.JSON:
		return r.Raw
	}
	return nil
}

// String returns value by key as text.
func (c Checklist) String(key string) string {
	return c.get(key).String()
}

// Text returns value by key as written in payload: numbers keep their json form, 85.0 stays 85.0.
func (c Checklist) Text(key string) string {
	r := c.get(key)
	if r.Type == gjson.Number {
		return r.Raw
	}
	return r.String()
}

// Float returns value by key as number. Numeric strings are accepted.
func (c Checklist) Float(key string) (float64, error) {
	r := c.get(key)
	switch r.Type {
	case gjson.Number:
		return r.Num, nil
	case gjson.True:
		return 1, nil
	case gjson.String:
		if f, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64); err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %w: %s=%s", ErrBadValue, errNotNumber, key, r.Raw)
}

// Int returns value by key as integer. Numbers are truncated, strings must be integral.
func (c Checklist) Int(key string) (int, error) {
	r := c.get(key)
	switch r.Type {
	case gjson.Number:
		return int(r.Num), nil
	case gjson.True:
		return 1, nil
	case gjson.String:
		if i, err := strconv.Atoi(strings.TrimSpace(r.Str)); err == nil {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %w: %s=%s", ErrBadValue, errNotInteger, key, r.Raw)
}

// Keys of payload in order of first occurrence.
func (c Checklist) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// UnknownUnitKeys returns per-unit keys with unit number outside 1..units.
func (c Checklist) UnknownUnitKeys(units int) (keys []string) {
	for _, key := range c.Keys() {
		m := unitKeyReg.FindStringSubmatch(key)
		if len(m) != 3 {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err != nil || n < 1 || n > units {
			keys = append(keys, key)
		}
	}
	return
}

func (c Checklist) get(key string) gjson.Result {
	return c.values[key]
}

func notEmpty(r gjson.Result) (ok bool) {
	r.ForEach(func(_, _ gjson.Result) bool {
		ok = true
		return false
	})
	return
}
