package groceries

import "time"

// idSource hands out millisecond timestamps, bumped when needed so that
// every id is strictly greater than the previous one.
type idSource struct {
	now  func() time.Time
	last int64
}

func (s *idSource) next() int64 {
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
