// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package connstr parses and encodes database connection strings in the
semicolon-delimited format used by ADO.NET providers such as
System.Data.SqlClient and the Entity Framework.

This package is designed for read-modify-write scenarios: a string is parsed
into a ConnectionString, inspected or edited through a format view (MSSQL or
EntityFramework), and written back out with String. Parsing never fails on
malformed fragments; they are dropped and parsing continues with the next
property.

Syntax

A connection string is a sequence of properties separated by semicolons
(';'). A property is a key and a value separated by an equals sign ('='):

	data source=.\SQL2017;initial catalog=Db1;

Keys are case-insensitive and surrounding whitespace is ignored. A key may
contain a literal equals sign by doubling it ("=="). Several keys have
synonyms: "server", "address", "addr" and "network address" all name the
data source, for instance. See Normalize for the full table.

Values are trimmed of surrounding whitespace. A value that starts with a
single quote ('\'') or double quote ('"') runs until the matching closing
quote, so it may contain semicolons, equals signs and significant
whitespace. Inside a quoted value, the opening quote character is written
twice to embed it literally; the other quote character has no special
meaning:

	password="Pass1=3"
	password='say "hi"'
	password="it's ""quoted"""

A property without an equals sign is kept with an empty value. A property
with an empty key, or with text between its closing quote and the next
semicolon, is skipped. If a quoted value is never closed, the value is the
verbatim text up to the next semicolon.

Repeated keys

If the same key (after resolving synonyms) appears more than once, the last
value wins. The key keeps the position where it first appeared.
*/
package connstr
