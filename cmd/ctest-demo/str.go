package main

import (
	"strings"

	"ctest"
	"ctest/assert"
)

var _ = ctest.Add("Str", "Concat", func() {
	assert.Str("foobar", "foo"+"bar")
})

var _ = ctest.Add("Str", "Runes", func() {
	assert.WStr([]rune("ÄÖÜ"), []rune(strings.ToUpper("äöü")))
})

var _ = ctest.Add("Str", "Bytes", func() {
	assert.Data([]byte{0xca, 0xfe}, []byte("\xca\xfe"))
})
