package internal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PropertiesFlag collects repeated key=value pairs, converting values
// to bool, numeric or null where they parse as such.
type PropertiesFlag map[string]interface{}

func (f *PropertiesFlag) Set(s string) error {
	if len(*f) == 0 {
		*f = PropertiesFlag{}
	}
	c := strings.SplitN(s, "=", 2)
	if len(c) != 2 {
		return errors.New("malformed key-value flag")
	}
	(*f)[c[0]] = convertValue(c[1])
	return nil
}

func convertValue(s string) interface{} {
	switch s {
	case "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if x, err := strconv.ParseFloat(s, 64); err == nil {
		return x
	}
	return s
}

func (f *PropertiesFlag) String() string {
	return fmt.Sprintf("%v", map[string]interface{}(*f))
}
