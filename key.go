// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package connstr

import "strings"

// A Key is the canonical name of a connection string property. Recognized
// properties have exported constants; any other key is represented by its
// trimmed, lowercased text.
type Key string

// SqlClient properties.
const (
	ApplicationName          Key = "application name"
	ApplicationIntent        Key = "application intent"
	AttachDBFilename         Key = "attachdbfilename"
	ConnectTimeout           Key = "connect timeout"
	CurrentLanguage          Key = "current language"
	DataSource               Key = "data source"
	Encrypt                  Key = "encrypt"
	FailoverPartner          Key = "failover partner"
	InitialCatalog           Key = "initial catalog"
	IntegratedSecurity       Key = "integrated security"
	MaxPoolSize              Key = "max pool size"
	MinPoolSize              Key = "min pool size"
	MultipleActiveResultSets Key = "multipleactiveresultsets"
	MultiSubnetFailover      Key = "multisubnetfailover"
	NetworkLibrary           Key = "network library"
	PacketSize               Key = "packet size"
	Password                 Key = "password"
	PersistSecurityInfo      Key = "persist security info"
	Pooling                  Key = "pooling"
	TrustServerCertificate   Key = "trustservercertificate"
	UserID                   Key = "user id"
	WorkstationID            Key = "workstation id"
)

// Entity Framework properties.
const (
	Metadata                 Key = "metadata"
	Name                     Key = "name"
	Provider                 Key = "provider"
	ProviderConnectionString Key = "provider connection string"
)

// aliases maps every accepted spelling (lowercase) to its canonical key.
// Canonical names map to themselves.
var aliases = map[string]Key{
	"application name": ApplicationName,
	"app":              ApplicationName,

	"application intent": ApplicationIntent,
	"applicationintent":  ApplicationIntent,

	"attachdbfilename":    AttachDBFilename,
	"attach dbfilename":   AttachDBFilename,
	"extended properties": AttachDBFilename,
	"initial file name":   AttachDBFilename,

	"connect timeout":    ConnectTimeout,
	"connection timeout": ConnectTimeout,
	"timeout":            ConnectTimeout,

	"current language": CurrentLanguage,
	"language":         CurrentLanguage,

	"data source":     DataSource,
	"server":          DataSource,
	"address":         DataSource,
	"addr":            DataSource,
	"network address": DataSource,

	"encrypt": Encrypt,

	"failover partner": FailoverPartner,

	"initial catalog": InitialCatalog,
	"database":        InitialCatalog,

	"integrated security": IntegratedSecurity,
	"trusted_connection":  IntegratedSecurity,

	"max pool size": MaxPoolSize,
	"min pool size": MinPoolSize,

	"multipleactiveresultsets":    MultipleActiveResultSets,
	"multiple active result sets": MultipleActiveResultSets,

	"multisubnetfailover":   MultiSubnetFailover,
	"multi subnet failover": MultiSubnetFailover,

	"network library": NetworkLibrary,
	"network":         NetworkLibrary,
	"net":             NetworkLibrary,

	"packet size": PacketSize,

	"password": Password,
	"pwd":      Password,

	"persist security info": PersistSecurityInfo,
	"persistsecurityinfo":   PersistSecurityInfo,

	"pooling": Pooling,

	"trustservercertificate":   TrustServerCertificate,
	"trust server certificate": TrustServerCertificate,

	"user id": UserID,
	"uid":     UserID,
	"user":    UserID,

	"workstation id": WorkstationID,
	"wsid":           WorkstationID,

	"metadata":                   Metadata,
	"name":                       Name,
	"provider":                   Provider,
	"provider connection string": ProviderConnectionString,
}

var knownKeys = func() map[Key]struct{} {
	m := make(map[Key]struct{})
	for _, k := range aliases {
		m[k] = struct{}{}
	}
	return m
}()

// Normalize returns the canonical key for the given key text. Matching is
// case-insensitive and ignores surrounding whitespace. Unrecognized keys are
// returned as their trimmed, lowercased text.
func Normalize(key string) Key {
	k := strings.ToLower(strings.TrimSpace(key))
	if canon, ok := aliases[k]; ok {
		return canon
	}
	return Key(k)
}

// Known reports whether k is one of the recognized property names.
func (k Key) Known() bool {
	_, ok := knownKeys[k]
	return ok
}

func (k Key) String() string {
	return string(k)
}
