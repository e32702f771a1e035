// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package connstr

import (
	"strconv"
	"strings"
	"time"
)

// Defaults used by System.Data.SqlClient when a property is absent.
const (
	DefaultConnectTimeout = 15 * time.Second
	DefaultMaxPoolSize    = 100
	DefaultMinPoolSize    = 0
	DefaultPacketSize     = 8000
)

// MSSQL is a SQL Server (System.Data.SqlClient) connection string. The zero
// value is an empty connection string.
//
// Boolean accessors accept "true", "yes", "false" and "no" in any case and
// return the property's default for anything else. Integer accessors return
// the default for values that are not decimal integers.
type MSSQL struct {
	ConnectionString
}

// ParseMSSQL parses a SQL Server connection string. Like Parse, it never
// fails.
func ParseMSSQL(s string) *MSSQL {
	return &MSSQL{ConnectionString: *Parse(s)}
}

// ApplicationName returns the name the application reports to the server and
// whether it is set.
func (m *MSSQL) ApplicationName() (string, bool) { return m.Get(ApplicationName) }

// SetApplicationName sets the application name property.
func (m *MSSQL) SetApplicationName(v string) { m.Set(ApplicationName, v) }

// ApplicationIntent returns the declared workload type (ReadWrite or
// ReadOnly) and whether it is set.
func (m *MSSQL) ApplicationIntent() (string, bool) { return m.Get(ApplicationIntent) }

// SetApplicationIntent sets the application intent property.
func (m *MSSQL) SetApplicationIntent(v string) { m.Set(ApplicationIntent, v) }

// AttachDBFilename returns the path of a database file to attach and whether
// it is set.
func (m *MSSQL) AttachDBFilename() (string, bool) { return m.Get(AttachDBFilename) }

// SetAttachDBFilename sets the attach db filename property.
func (m *MSSQL) SetAttachDBFilename(v string) { m.Set(AttachDBFilename, v) }

// CurrentLanguage returns the SQL Server language name for the session and
// whether it is set.
func (m *MSSQL) CurrentLanguage() (string, bool) { return m.Get(CurrentLanguage) }

// SetCurrentLanguage sets the current language property.
func (m *MSSQL) SetCurrentLanguage(v string) { m.Set(CurrentLanguage, v) }

// DataSource returns the name or network address of the server and whether it
// is set.
func (m *MSSQL) DataSource() (string, bool) { return m.Get(DataSource) }

// SetDataSource sets the data source property.
func (m *MSSQL) SetDataSource(v string) { m.Set(DataSource, v) }

// FailoverPartner returns the name of the mirroring failover partner and
// whether it is set.
func (m *MSSQL) FailoverPartner() (string, bool) { return m.Get(FailoverPartner) }

// SetFailoverPartner sets the failover partner property.
func (m *MSSQL) SetFailoverPartner(v string) { m.Set(FailoverPartner, v) }

// InitialCatalog returns the name of the database and whether it is set.
func (m *MSSQL) InitialCatalog() (string, bool) { return m.Get(InitialCatalog) }

// SetInitialCatalog sets the initial catalog property.
func (m *MSSQL) SetInitialCatalog(v string) { m.Set(InitialCatalog, v) }

// NetworkLibrary returns the network library used to reach the server and
// whether it is set.
func (m *MSSQL) NetworkLibrary() (string, bool) { return m.Get(NetworkLibrary) }

// SetNetworkLibrary sets the network library property.
func (m *MSSQL) SetNetworkLibrary(v string) { m.Set(NetworkLibrary, v) }

// Password returns the password of the SQL Server account and whether it is
// set.
func (m *MSSQL) Password() (string, bool) { return m.Get(Password) }

// SetPassword sets the password property.
func (m *MSSQL) SetPassword(v string) { m.Set(Password, v) }

// UserID returns the SQL Server login name and whether it is set.
func (m *MSSQL) UserID() (string, bool) { return m.Get(UserID) }

// SetUserID sets the user id property.
func (m *MSSQL) SetUserID(v string) { m.Set(UserID, v) }

// WorkstationID returns the name of the client workstation and whether it is
// set.
func (m *MSSQL) WorkstationID() (string, bool) { return m.Get(WorkstationID) }

// SetWorkstationID sets the workstation id property.
func (m *MSSQL) SetWorkstationID(v string) { m.Set(WorkstationID, v) }

// IntegratedSecurity reports whether Windows authentication is requested.
// In addition to the usual boolean tokens, "sspi" means true.
func (m *MSSQL) IntegratedSecurity() bool {
	v, _ := m.Get(IntegratedSecurity)
	if strings.EqualFold(strings.TrimSpace(v), "sspi") {
		return true
	}
	return parseBool(v, false)
}

// SetIntegratedSecurity sets the integrated security property.
func (m *MSSQL) SetIntegratedSecurity(b bool) { m.setBool(IntegratedSecurity, b) }

// Encrypt reports whether traffic to the server is encrypted. It defaults to
// false.
func (m *MSSQL) Encrypt() bool { return m.getBool(Encrypt, false) }

// SetEncrypt sets the encrypt property.
func (m *MSSQL) SetEncrypt(b bool) { m.setBool(Encrypt, b) }

// MultipleActiveResultSets reports whether a connection may have several
// pending requests. It defaults to false.
func (m *MSSQL) MultipleActiveResultSets() bool { return m.getBool(MultipleActiveResultSets, false) }

// SetMultipleActiveResultSets sets the multiple active result sets property.
func (m *MSSQL) SetMultipleActiveResultSets(b bool) { m.setBool(MultipleActiveResultSets, b) }

// MultiSubnetFailover reports whether to try all addresses of an availability
// group listener in parallel. It defaults to false.
func (m *MSSQL) MultiSubnetFailover() bool { return m.getBool(MultiSubnetFailover, false) }

// SetMultiSubnetFailover sets the multi subnet failover property.
func (m *MSSQL) SetMultiSubnetFailover(b bool) { m.setBool(MultiSubnetFailover, b) }

// PersistSecurityInfo reports whether the password stays part of an open
// connection's string. It defaults to false.
func (m *MSSQL) PersistSecurityInfo() bool { return m.getBool(PersistSecurityInfo, false) }

// SetPersistSecurityInfo sets the persist security info property.
func (m *MSSQL) SetPersistSecurityInfo(b bool) { m.setBool(PersistSecurityInfo, b) }

// Pooling reports whether connection pooling is enabled. It defaults to true.
func (m *MSSQL) Pooling() bool { return m.getBool(Pooling, true) }

// SetPooling sets the pooling property.
func (m *MSSQL) SetPooling(b bool) { m.setBool(Pooling, b) }

// TrustServerCertificate reports whether the server certificate is accepted
// without validation. It defaults to false.
func (m *MSSQL) TrustServerCertificate() bool { return m.getBool(TrustServerCertificate, false) }

// SetTrustServerCertificate sets the trust server certificate property.
func (m *MSSQL) SetTrustServerCertificate(b bool) { m.setBool(TrustServerCertificate, b) }

// ConnectTimeout returns the time to wait for a connection to open.
// It defaults to DefaultConnectTimeout. Negative values are treated as
// absent.
func (m *MSSQL) ConnectTimeout() time.Duration {
	secs := m.getInt(ConnectTimeout, -1)
	if secs < 0 {
		return DefaultConnectTimeout
	}
	return time.Duration(secs) * time.Second
}

// SetConnectTimeout stores the timeout rounded down to whole seconds.
func (m *MSSQL) SetConnectTimeout(d time.Duration) {
	m.setInt(ConnectTimeout, int(d/time.Second))
}

// MaxPoolSize returns the largest number of pooled connections. It defaults
// to DefaultMaxPoolSize.
func (m *MSSQL) MaxPoolSize() int { return m.getInt(MaxPoolSize, DefaultMaxPoolSize) }

// SetMaxPoolSize sets the max pool size property.
func (m *MSSQL) SetMaxPoolSize(n int) { m.setInt(MaxPoolSize, n) }

// MinPoolSize returns the smallest number of pooled connections. It defaults
// to DefaultMinPoolSize.
func (m *MSSQL) MinPoolSize() int { return m.getInt(MinPoolSize, DefaultMinPoolSize) }

// SetMinPoolSize sets the min pool size property.
func (m *MSSQL) SetMinPoolSize(n int) { m.setInt(MinPoolSize, n) }

// PacketSize returns the network packet size in bytes. It defaults to
// DefaultPacketSize.
func (m *MSSQL) PacketSize() int { return m.getInt(PacketSize, DefaultPacketSize) }

// SetPacketSize sets the packet size property.
func (m *MSSQL) SetPacketSize(n int) { m.setInt(PacketSize, n) }

func (m *MSSQL) getBool(key Key, def bool) bool {
	v, ok := m.Get(key)
	if !ok {
		return def
	}
	return parseBool(v, def)
}

func (m *MSSQL) setBool(key Key, b bool) {
	m.Set(key, strconv.FormatBool(b))
}

func (m *MSSQL) getInt(key Key, def int) int {
	v, ok := m.Get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func (m *MSSQL) setInt(key Key, n int) {
	m.Set(key, strconv.Itoa(n))
}

// parseBool interprets the boolean tokens accepted by SqlClient, returning
// def if v is not one of them.
func parseBool(v string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes":
		return true
	case "false", "no":
		return false
	default:
		return def
	}
}
