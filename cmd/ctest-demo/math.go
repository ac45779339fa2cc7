package main

import (
	"ctest"
	"ctest/assert"
)

func add(a, b int) int { return a + b }

func sub(a, b int) int { return a - b }

func init() {
	ctest.Add("Math", "Add", func() {
		assert.Equal(5, add(2, 3))
	})

	// Fails on purpose to show the failure output.
	ctest.Add("Math", "Sub", func() {
		ctest.Log("checking %d - %d", 9, 4)
		assert.Equal(5, sub(9, 5))
	})

	ctest.Add("Math", "Float", func() {
		assert.DblNear(0.3, 0.1+0.2)
		assert.DblFar(0.3, 0.31)
	})

	ctest.Skip("Math", "Overflow", func() {
		assert.Fail()
	})
}
