// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package connstr

import "strings"

// A ConnectionString is an ordered set of properties. The zero value is an
// empty connection string. ConnectionStrings can be read by multiple
// concurrent goroutines, but must not be modified concurrently.
type ConnectionString struct {
	pairs []Pair
}

// A Pair is a single property with its decoded value.
type Pair struct {
	Key   Key
	Value string
}

// Get returns the value of the property with the given key and whether the
// property is present. A present property may have an empty value. The key
// is resolved with Normalize, so synonyms find the same property.
func (cs *ConnectionString) Get(key Key) (_ string, ok bool) {
	if cs == nil {
		return "", false
	}
	key = Normalize(string(key))
	for _, p := range cs.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Set sets the property to the given value. The key is resolved with
// Normalize first. If the property is already present, its value is replaced
// in place; otherwise the property is added to the end. Set panics if the key
// is blank or contains a semicolon.
func (cs *ConnectionString) Set(key Key, value string) {
	key = Normalize(string(key))
	if key == "" {
		panic("ConnectionString.Set empty key")
	}
	if strings.ContainsRune(string(key), ';') {
		panic("ConnectionString.Set invalid key: " + string(key))
	}
	for i := range cs.pairs {
		if cs.pairs[i].Key == key {
			cs.pairs[i].Value = value
			return
		}
	}
	cs.pairs = append(cs.pairs, Pair{Key: key, Value: value})
}

// Delete removes the property with the given key, if present. The key is
// resolved with Normalize first.
func (cs *ConnectionString) Delete(key Key) {
	if cs == nil {
		return
	}
	key = Normalize(string(key))
	for i := range cs.pairs {
		if cs.pairs[i].Key != key {
			continue
		}
		copy(cs.pairs[i:], cs.pairs[i+1:])
		// Zero out truncated element for garbage collection.
		cs.pairs[len(cs.pairs)-1] = Pair{}
		cs.pairs = cs.pairs[:len(cs.pairs)-1]
		return
	}
}

// Len returns the number of properties.
func (cs *ConnectionString) Len() int {
	if cs == nil {
		return 0
	}
	return len(cs.pairs)
}

// Keys returns the property keys in order.
func (cs *ConnectionString) Keys() []Key {
	if cs == nil {
		return nil
	}
	keys := make([]Key, 0, len(cs.pairs))
	for _, p := range cs.pairs {
		keys = append(keys, p.Key)
	}
	return keys
}

// Pairs returns a copy of the properties in order.
func (cs *ConnectionString) Pairs() []Pair {
	if cs == nil {
		return nil
	}
	return append([]Pair(nil), cs.pairs...)
}

// String returns the connection string text. Each property is written as
// key=value followed by a semicolon, quoting values only where necessary.
func (cs *ConnectionString) String() string {
	return string(cs.appendText(nil, false))
}

// Redacted is like String, but replaces the password with "***". It is
// suitable for logging.
func (cs *ConnectionString) Redacted() string {
	return string(cs.appendText(nil, true))
}

func (cs *ConnectionString) appendText(dst []byte, redact bool) []byte {
	if cs == nil {
		return dst
	}
	for _, p := range cs.pairs {
		v := p.Value
		if redact && p.Key == Password {
			v = "***"
		}
		dst = AppendKeyValue(dst, string(p.Key), v, false)
		dst = append(dst, ';')
	}
	return dst
}

// MarshalText returns the same text as String.
func (cs *ConnectionString) MarshalText() ([]byte, error) {
	return cs.appendText(nil, false), nil
}

// UnmarshalText parses the connection string, replacing any properties in
// cs. Unlike Parse, it returns a *ParseError if data is not valid UTF-8.
func (cs *ConnectionString) UnmarshalText(data []byte) error {
	if i := validUTF8(data); i != -1 {
		return &ParseError{Offset: i, Err: ErrInvalidUTF8}
	}
	*cs = *Parse(string(data))
	return nil
}
