// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package connstr_test

import (
	"fmt"

	"github.com/yourbase/connstr"
)

func Example() {
	conn := connstr.ParseMSSQL(`data source=.\SQL2017;initial catalog=Db1;`)
	dataSource, _ := conn.DataSource()
	initialCatalog, _ := conn.InitialCatalog()
	fmt.Println(dataSource)
	fmt.Println(initialCatalog)

	var buf []byte
	buf = connstr.AppendKeyValue(buf, "data source", dataSource, false)
	buf = connstr.AppendKeyValue(buf, "initial catalog", initialCatalog, false)

	// Add a user and a password to the connection string.
	buf = connstr.AppendKeyValue(buf, "user id", "john", false)
	buf = connstr.AppendKeyValue(buf, "password", "Pass1=3", false)
	fmt.Println(string(buf))

	// Output:
	// .\SQL2017
	// Db1
	// data source=.\SQL2017;initial catalog=Db1;user id=john;password="Pass1=3"
}

func ExampleParse() {
	cs := connstr.Parse(`Server=db.example.com; Database=Orders; Pwd='Test=1'`)
	for _, p := range cs.Pairs() {
		fmt.Printf("%s: %s\n", p.Key, p.Value)
	}

	// Output:
	// data source: db.example.com
	// initial catalog: Orders
	// password: Test=1
}

// Synonyms are resolved when parsing, and later properties replace earlier
// ones with the same meaning.
func ExampleParse_lastWins() {
	cs := connstr.Parse("server=A;Data Source=B")
	fmt.Println(cs)

	// Output:
	// data source=B;
}

func ExampleMSSQL() {
	m := connstr.ParseMSSQL("server=srv;trusted_connection=sspi")
	fmt.Println(m.IntegratedSecurity())
	fmt.Println(m.Pooling())
	fmt.Println(m.ConnectTimeout())

	m.SetInitialCatalog("Db1")
	m.SetPassword("it's a secret")
	fmt.Println(m)
	fmt.Println(m.Redacted())

	// Output:
	// true
	// true
	// 15s
	// data source=srv;integrated security=sspi;initial catalog=Db1;password="it's a secret";
	// data source=srv;integrated security=sspi;initial catalog=Db1;password=***;
}

func ExampleEntityFramework_ProviderConnection() {
	ef := connstr.ParseEntityFramework(
		`provider=System.Data.SqlClient;provider connection string="server=.\Sql2017;database=Db1"`)
	inner := ef.ProviderConnection()
	dataSource, _ := inner.DataSource()
	fmt.Println(dataSource)

	// Output:
	// .\Sql2017
}

func ExampleAppendKeyValue() {
	var buf []byte
	buf = connstr.AppendKeyValue(buf, "database", "MasterDb", false)
	buf = connstr.AppendKeyValue(buf, "server", `.\SQL2017`, false)
	buf = connstr.AppendKeyValue(buf, "user id", "me", false)
	buf = connstr.AppendKeyValue(buf, "password", "pass=1", false)
	buf = connstr.AppendKeyValue(buf, "application name", `say "hi"`, false)
	fmt.Println(string(buf))

	// Output:
	// database=MasterDb;server=.\SQL2017;user id=me;password="pass=1";application name='say "hi"'
}
