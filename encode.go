// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package connstr

import (
	"strings"
	"unicode"
)

// AppendKeyValue appends a key=value property to dst and returns the
// extended buffer. If dst is not empty and does not already end in a
// semicolon, a semicolon separator is written first. No semicolon is written
// after the property.
//
// The key is written as given, except that equals signs are doubled. The
// value is quoted if forceQuote is true, if it is empty, or if it could not
// be read back verbatim without quotes. Double quotes are preferred; single
// quotes are used for a value that contains a double quote but no single
// quote.
func AppendKeyValue(dst []byte, key, value string, forceQuote bool) []byte {
	if len(dst) > 0 && dst[len(dst)-1] != ';' {
		dst = append(dst, ';')
	}
	dst = append(dst, strings.ReplaceAll(key, "=", "==")...)
	dst = append(dst, '=')
	switch {
	case !forceQuote && !shouldQuoteValue(value):
		dst = append(dst, value...)
	case strings.Contains(value, `"`) && !strings.Contains(value, `'`):
		dst = append(dst, '\'')
		dst = append(dst, value...)
		dst = append(dst, '\'')
	default:
		dst = append(dst, '"')
		dst = append(dst, strings.ReplaceAll(value, `"`, `""`)...)
		dst = append(dst, '"')
	}
	return dst
}

func shouldQuoteValue(v string) bool {
	if v == "" || strings.TrimSpace(v) != v {
		return true
	}
	for _, c := range v {
		if c == ';' || c == '=' || c == '"' || c == '\'' || unicode.IsControl(c) {
			return true
		}
	}
	return false
}
