package main

import (
	"ctest"
	"ctest/assert"
)

type counter struct {
	values []int
	closed bool
}

func init() {
	ctest.Setup("Counter", func(c *counter) {
		c.values = []int{1, 2, 3}
		c.closed = false
	})
	ctest.Teardown("Counter", func(c *counter) {
		c.closed = true
	})

	ctest.AddFixture("Counter", "Len", func(c *counter) {
		assert.Equal(3, len(c.values))
		assert.False(c.closed)
	})

	ctest.AddFixture("Counter", "Values", func(c *counter) {
		assert.DeepEqual([]int{1, 2, 3}, c.values)
	})

	ctest.SkipFixture("Counter", "Reset", func(c *counter) {
		c.values = nil
		assert.Null(c.values)
	})
}
