package registry

import (
	"hash/fnv"

	"ctest/internal/domain"
)

// DefaultBuckets is the bucket count used by a zero-value SuiteIndex
const DefaultBuckets = 1024

type suiteNode struct {
	suite *domain.Suite
	next  *suiteNode
}

// SuiteIndex is a fixed-size chained hash table of suites keyed by name.
// The zero value is ready to use; buckets are allocated on first access.
type SuiteIndex struct {
	size    int
	buckets []*suiteNode
	count   int
}

// NewSuiteIndex creates an index with the given number of buckets
func NewSuiteIndex(size int) *SuiteIndex {
	return &SuiteIndex{size: size}
}

// init allocates the buckets unless that already happened. Every entry point
// calls it, so the first registration wins regardless of order.
func (idx *SuiteIndex) init() {
	if idx.buckets != nil {
		return
	}
	if idx.size <= 0 {
		idx.size = DefaultBuckets
	}
	idx.buckets = make([]*suiteNode, idx.size)
}

// HashName returns the 32-bit FNV-1a hash of a suite name
func HashName(name string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return h.Sum32()
}

func (idx *SuiteIndex) bucket(name string) int {
	return int(HashName(name) % uint32(len(idx.buckets)))
}

// Find returns the suite with the given name, or nil
func (idx *SuiteIndex) Find(name string) *domain.Suite {
	idx.init()
	for n := idx.buckets[idx.bucket(name)]; n != nil; n = n.next {
		if n.suite.Name == name {
			return n.suite
		}
	}
	return nil
}

// Insert prepends the suite to its bucket chain without checking for an
// existing entry of the same name.
func (idx *SuiteIndex) Insert(s *domain.Suite) {
	idx.init()
	b := idx.bucket(s.Name)
	idx.buckets[b] = &suiteNode{suite: s, next: idx.buckets[b]}
	idx.count++
}

// Emplace returns the existing suite named s.Name, or inserts and returns s
func (idx *SuiteIndex) Emplace(s *domain.Suite) *domain.Suite {
	if found := idx.Find(s.Name); found != nil {
		return found
	}
	idx.Insert(s)
	return s
}

// Len returns the number of suites in the index
func (idx *SuiteIndex) Len() int {
	return idx.count
}

// Buckets returns the bucket count
func (idx *SuiteIndex) Buckets() int {
	idx.init()
	return len(idx.buckets)
}

// ChainLen returns how many suites hash into the bucket holding name
func (idx *SuiteIndex) ChainLen(name string) int {
	idx.init()
	n := 0
	for node := idx.buckets[idx.bucket(name)]; node != nil; node = node.next {
		n++
	}
	return n
}
