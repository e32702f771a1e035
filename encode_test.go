// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package connstr

import "testing"

func TestAppendKeyValue(t *testing.T) {
	tests := []struct {
		name       string
		dst        string
		key        string
		value      string
		forceQuote bool
		want       string
	}{
		{
			name:  "Plain",
			key:   "user id",
			value: "john",
			want:  "user id=john",
		},
		{
			name:  "Backslash",
			key:   "data source",
			value: `.\SQL2017`,
			want:  `data source=.\SQL2017`,
		},
		{
			name:  "Equals",
			key:   "password",
			value: "Pass1=3",
			want:  `password="Pass1=3"`,
		},
		{
			name:  "Semicolon",
			key:   "password",
			value: "a;b",
			want:  `password="a;b"`,
		},
		{
			name:  "Empty",
			key:   "a",
			value: "",
			want:  `a=""`,
		},
		{
			name:       "ForceQuote",
			key:        "a",
			value:      "x",
			forceQuote: true,
			want:       `a="x"`,
		},
		{
			name:  "SingleQuote",
			key:   "a",
			value: "it's",
			want:  `a="it's"`,
		},
		{
			name:  "DoubleQuote",
			key:   "a",
			value: `say "hi"`,
			want:  `a='say "hi"'`,
		},
		{
			name:  "BothQuotes",
			key:   "a",
			value: `it's "x"`,
			want:  `a="it's ""x"""`,
		},
		{
			name:  "SurroundingSpace",
			key:   "a",
			value: " x ",
			want:  `a=" x "`,
		},
		{
			name:  "InternalSpace",
			key:   "application name",
			value: "My App",
			want:  "application name=My App",
		},
		{
			name:  "ControlCharacter",
			key:   "a",
			value: "x\ny",
			want:  "a=\"x\ny\"",
		},
		{
			name:  "KeyWithEquals",
			key:   "a=b",
			value: "c",
			want:  "a==b=c",
		},
		{
			name:  "KeyCasePreserved",
			key:   "Data Source",
			value: "srv",
			want:  "Data Source=srv",
		},
		{
			name:  "Separator",
			dst:   "a=1",
			key:   "b",
			value: "2",
			want:  "a=1;b=2",
		},
		{
			name:  "ExistingSeparator",
			dst:   "a=1;",
			key:   "b",
			value: "2",
			want:  "a=1;b=2",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var dst []byte
			if test.dst != "" {
				dst = []byte(test.dst)
			}
			got := string(AppendKeyValue(dst, test.key, test.value, test.forceQuote))
			if got != test.want {
				t.Errorf("AppendKeyValue(%q, %q, %q, %t) = %q; want %q",
					test.dst, test.key, test.value, test.forceQuote, got, test.want)
			}
		})
	}
}

func TestAppendKeyValueSequence(t *testing.T) {
	conn := ParseMSSQL("data source=.\\SQL2017;initial catalog=Db1;")
	dataSource, _ := conn.DataSource()
	initialCatalog, _ := conn.InitialCatalog()

	var buf []byte
	buf = AppendKeyValue(buf, "data source", dataSource, false)
	buf = AppendKeyValue(buf, "initial catalog", initialCatalog, false)
	buf = AppendKeyValue(buf, "user id", "john", false)
	buf = AppendKeyValue(buf, "password", "Pass1=3", false)

	const want = `data source=.\SQL2017;initial catalog=Db1;user id=john;password="Pass1=3"`
	if got := string(buf); got != want {
		t.Errorf("connection string = %q; want %q", got, want)
	}
}
