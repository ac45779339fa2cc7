package main

import (
	"ctest"
	"ctest/assert"
	"ctest/sqlfixture"
)

// Needs a MySQL server configured through DB_* variables or .env; skipped
// by default.
var _ = sqlfixture.Register("Database", sqlfixture.OptionsFromEnv(".env"))

var _ = ctest.SkipFixture("Database", "CreateTable", func(d *sqlfixture.Data) {
	_, err := d.DB.Exec("CREATE TABLE items (id INT PRIMARY KEY)")
	assert.Null(err)

	var n int
	assert.Null(d.DB.QueryRow("SELECT COUNT(*) FROM items").Scan(&n))
	assert.Equal(0, n)
})
