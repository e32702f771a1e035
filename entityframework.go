// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package connstr

// EntityFramework is an Entity Framework connection string, which wraps a
// provider connection string together with model metadata. The zero value is
// an empty connection string.
type EntityFramework struct {
	ConnectionString
}

// ParseEntityFramework parses an Entity Framework connection string. Like
// Parse, it never fails.
func ParseEntityFramework(s string) *EntityFramework {
	return &EntityFramework{ConnectionString: *Parse(s)}
}

// Metadata returns the locations of the model metadata and whether it is set.
func (ef *EntityFramework) Metadata() (string, bool) { return ef.Get(Metadata) }

// SetMetadata sets the metadata property.
func (ef *EntityFramework) SetMetadata(v string) { ef.Set(Metadata, v) }

// Name returns the name of a connection string in the application
// configuration and whether it is set.
func (ef *EntityFramework) Name() (string, bool) { return ef.Get(Name) }

// SetName sets the name property.
func (ef *EntityFramework) SetName(v string) { ef.Set(Name, v) }

// Provider returns the invariant name of the underlying data provider and
// whether it is set.
func (ef *EntityFramework) Provider() (string, bool) { return ef.Get(Provider) }

// SetProvider sets the provider property.
func (ef *EntityFramework) SetProvider(v string) { ef.Set(Provider, v) }

// ProviderConnectionString returns the nested connection string passed to
// the underlying provider, in its decoded form.
func (ef *EntityFramework) ProviderConnectionString() (string, bool) {
	return ef.Get(ProviderConnectionString)
}

// SetProviderConnectionString sets the nested provider connection string.
// The value is quoted as needed when the string is encoded.
func (ef *EntityFramework) SetProviderConnectionString(v string) {
	ef.Set(ProviderConnectionString, v)
}

// ProviderConnection parses the provider connection string as a SQL Server
// connection string. If the property is absent, it returns an empty MSSQL.
func (ef *EntityFramework) ProviderConnection() *MSSQL {
	v, _ := ef.ProviderConnectionString()
	return ParseMSSQL(v)
}

// SetProviderConnection stores the text form of m as the provider
// connection string.
func (ef *EntityFramework) SetProviderConnection(m *MSSQL) {
	ef.SetProviderConnectionString(m.String())
}
