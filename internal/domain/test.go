package domain

// Test represents one registered test case
type Test struct {
	Suite string // Suite name, shared by tests that use the same hooks
	Name  string // Test name, not required to be unique

	Run     func()    // Nullary body, set for tests without fixture data
	RunData func(any) // Unary body, set for fixture tests
	Data    any       // Fixture data pointer, nil unless the test declared one

	Skip bool // Fixed at registration

	File string // Where the test was registered
	Line int
}

// HasData reports whether the test carries fixture data
func (t *Test) HasData() bool {
	return t.Data != nil
}

// Invoke calls the test body, passing fixture data when the test has it
func (t *Test) Invoke() {
	if t.HasData() {
		t.RunData(t.Data)
		return
	}
	t.Run()
}

// FullName returns "suite:test"
func (t *Test) FullName() string {
	return t.Suite + ":" + t.Name
}

// Suite binds setup and teardown hooks to a suite name
type Suite struct {
	Name     string
	Setup    func(any)
	Teardown func(any)
}
