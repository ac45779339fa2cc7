// Package sqlfixture gives fixture tests a scratch MySQL database.
//
// Register the hooks once for a suite and use Data as the fixture type:
//
//	var _ = sqlfixture.Register("Users", sqlfixture.OptionsFromEnv(".env"))
//
//	var _ = ctest.AddFixture("Users", "Insert", func(d *sqlfixture.Data) {
//		_, err := d.DB.Exec("CREATE TABLE users (id INT)")
//		assert.Null(err)
//	})
//
// Every test gets a new database, created in setup and dropped in teardown.
// A failing test skips teardown, so its database is kept for inspection.
package sqlfixture

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"ctest"
)

// Data is the fixture of a database test
type Data struct {
	DB   *sql.DB // Connection to the scratch database
	Name string  // Name of the scratch database

	server *sql.DB
}

// Register installs the setup and teardown hooks for suite
func Register(suite string, opts Options) bool {
	ctest.Setup(suite, func(d *Data) {
		if err := d.open(opts); err != nil {
			ctest.Err("%v", err)
		}
	})
	ctest.Teardown(suite, func(d *Data) {
		if err := d.drop(); err != nil {
			ctest.Err("%v", err)
		}
	})
	return true
}

// open connects to the server and creates a new scratch database
func (d *Data) open(opts Options) error {
	name := opts.NewDatabaseName()
	if !isValidDatabaseName(name) {
		return fmt.Errorf("invalid database name: %s", name)
	}

	// Connect to MySQL server (without specifying database)
	server, err := sql.Open("mysql", opts.DSN(""))
	if err != nil {
		return fmt.Errorf("failed to connect to database server: %w", err)
	}
	if err := server.Ping(); err != nil {
		server.Close()
		return fmt.Errorf("failed to ping database server: %w", err)
	}

	if _, err := server.Exec(fmt.Sprintf("CREATE DATABASE `%s`", name)); err != nil {
		server.Close()
		return fmt.Errorf("failed to create database %s: %w", name, err)
	}

	db, err := sql.Open("mysql", opts.DSN(name))
	if err != nil {
		server.Close()
		return fmt.Errorf("failed to open database %s: %w", name, err)
	}

	d.DB = db
	d.Name = name
	d.server = server
	return nil
}

// drop closes the scratch database and removes it from the server
func (d *Data) drop() error {
	if d.server == nil {
		return nil
	}
	if d.DB != nil {
		d.DB.Close()
	}

	_, err := d.server.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", d.Name))
	d.server.Close()
	d.DB, d.server = nil, nil
	if err != nil {
		return fmt.Errorf("failed to drop database %s: %w", d.Name, err)
	}
	return nil
}
