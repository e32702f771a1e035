// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package connstr

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		key  string
		want Key
	}{
		{"data source", DataSource},
		{"Data Source", DataSource},
		{"  server ", DataSource},
		{"ADDRESS", DataSource},
		{"addr", DataSource},
		{"network address", DataSource},
		{"initial catalog", InitialCatalog},
		{"Database", InitialCatalog},
		{"user id", UserID},
		{"UID", UserID},
		{"user", UserID},
		{"password", Password},
		{"Pwd", Password},
		{"integrated security", IntegratedSecurity},
		{"Trusted_Connection", IntegratedSecurity},
		{"app", ApplicationName},
		{"Connection Timeout", ConnectTimeout},
		{"timeout", ConnectTimeout},
		{"wsid", WorkstationID},
		{"Provider Connection String", ProviderConnectionString},
		{"Foo Bar", "foo bar"},
		{" Custom ", "custom"},
		{"", ""},
	}
	for _, test := range tests {
		if got := Normalize(test.key); got != test.want {
			t.Errorf("Normalize(%q) = %q; want %q", test.key, got, test.want)
		}
	}
}

func TestKnown(t *testing.T) {
	for alias, k := range aliases {
		if !k.Known() {
			t.Errorf("%q (alias %q).Known() = false; want true", k, alias)
		}
		if got := Normalize(string(k)); got != k {
			t.Errorf("Normalize(%q) = %q; want canonical name to map to itself", k, got)
		}
	}
	for _, k := range []Key{"foo", "server ", ""} {
		if k.Known() {
			t.Errorf("%q.Known() = true; want false", k)
		}
	}
}
