package utils

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
)

func PanicTrace(err interface{}) string {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%v\n", err)
	for i := 2; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fmt.Fprintf(buf, "%s:%d (0x%x)\n", file, line, pc)
	}
	return buf.String()
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// AnyNonBlank reports whether at least one value is non-blank.
func AnyNonBlank(values ...string) bool {
	for _, v := range values {
		if !IsBlank(v) {
			return true
		}
	}
	return false
}

// OrDefault returns def when s is blank.
func OrDefault(s, def string) string {
	if IsBlank(s) {
		return def
	}
	return s
}
