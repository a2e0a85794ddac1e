// Package sink persists record sets produced by the collector. Every sink
// creates its output location on demand and overwrites previous runs, which
// keeps re-collection idempotent. There is no atomic-write guarantee.
package sink

import (
	"fmt"
	"strconv"
)

// formatValue renders one record value for text output. JSON numbers decode
// to float64; integral values must not pick up an exponent or a trailing
// fraction.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
