// Package tagset implements the TagCollection capability described in
// spec §3/§4.1, grounded in original_source's
// crates/core/src/tags/collection.rs TagCollection trait. The default
// implementation is a string set; the interface is backend-agnostic so a
// bitset implementation over a fixed tag universe remains a valid
// alternative, as the original explicitly allows.
package tagset

// TagCollection is the capability set every tag container must implement.
type TagCollection interface {
	Contains(tag string) bool
	Intersects(other TagCollection) bool
	Intersection(other TagCollection) TagCollection
	Union(other TagCollection) TagCollection
	SymmetricDifference(other TagCollection) TagCollection
	Add(tag string)
	Remove(tag string)
	Len() int
	IsEmpty() bool
	Clone() TagCollection
	Tags() []string
}

// StringSet is the default TagCollection implementation: a set of short
// strings.
type StringSet struct {
	tags map[string]struct{}
}

// New constructs a StringSet from the given tags.
func New(tags ...string) *StringSet {
	s := &StringSet{tags: make(map[string]struct{}, len(tags))}
	for _, t := range tags {
		s.tags[t] = struct{}{}
	}
	return s
}

// Empty returns an empty StringSet.
func Empty() *StringSet { return New() }

func (s *StringSet) Contains(tag string) bool {
	_, ok := s.tags[tag]
	return ok
}

func (s *StringSet) Intersects(other TagCollection) bool {
	if s.Len() <= len(other.Tags()) {
		for t := range s.tags {
			if other.Contains(t) {
				return true
			}
		}
		return false
	}
	for _, t := range other.Tags() {
		if s.Contains(t) {
			return true
		}
	}
	return false
}

func (s *StringSet) Intersection(other TagCollection) TagCollection {
	result := Empty()
	for t := range s.tags {
		if other.Contains(t) {
			result.Add(t)
		}
	}
	return result
}

func (s *StringSet) Union(other TagCollection) TagCollection {
	result := s.Clone().(*StringSet)
	for _, t := range other.Tags() {
		result.Add(t)
	}
	return result
}

func (s *StringSet) SymmetricDifference(other TagCollection) TagCollection {
	result := Empty()
	for t := range s.tags {
		if !other.Contains(t) {
			result.Add(t)
		}
	}
	for _, t := range other.Tags() {
		if !s.Contains(t) {
			result.Add(t)
		}
	}
	return result
}

func (s *StringSet) Add(tag string) { s.tags[tag] = struct{}{} }

func (s *StringSet) Remove(tag string) { delete(s.tags, tag) }

func (s *StringSet) Len() int { return len(s.tags) }

func (s *StringSet) IsEmpty() bool { return len(s.tags) == 0 }

func (s *StringSet) Clone() TagCollection {
	return New(s.Tags()...)
}

func (s *StringSet) Tags() []string {
	out := make([]string, 0, len(s.tags))
	for t := range s.tags {
		out = append(out, t)
	}
	return out
}

// ContainsAll reports whether every tag in want is present in s.
func ContainsAll(s TagCollection, want []string) bool {
	for _, t := range want {
		if !s.Contains(t) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether any tag in want is present in s.
func ContainsAny(s TagCollection, want []string) bool {
	for _, t := range want {
		if s.Contains(t) {
			return true
		}
	}
	return false
}

// ContainsNone reports whether no tag in want is present in s.
func ContainsNone(s TagCollection, want []string) bool {
	return !ContainsAny(s, want)
}
