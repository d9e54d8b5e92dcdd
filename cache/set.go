// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package cache

// historySize is the CAMP per-set history ring buffer capacity.
const historySize = 16

// weightClasses is the number of CAMP size classes: rounded sizes
// 4,8,...,32 map to classes 0..7.
const weightClasses = 8

// Set is a byte-budgeted, unordered collection of compressed lines. Lines
// are held in a compact slice with swap-remove rather than per-line heap
// handles; lookup is a linear scan, which is cheap since a set never holds
// more than SetBudget/4 = 16 lines.
type Set struct {
	lines         []*Line
	remainingSize int

	campWeights    [weightClasses]int
	campHistory    [historySize]int
	campHistoryLen int
}

// NewSet returns an empty set with the full byte budget available and
// CAMP weights initialized to the identity ramp 1..8 (class 0 -> weight 1,
// class 7 -> weight 8); the trainer rewrites these after the first epoch.
func NewSet() *Set {
	s := &Set{remainingSize: SetBudget}
	for i := range s.campWeights {
		s.campWeights[i] = i + 1
	}
	return s
}

// RemainingSize returns the set's free byte budget.
func (s *Set) RemainingSize() int { return s.remainingSize }

// NumLines returns the number of lines currently resident.
func (s *Set) NumLines() int { return len(s.lines) }

// Lines exposes the resident lines for read-only iteration by policies and
// the trainer. Callers must not retain or mutate the returned slice itself
// (mutating the *Line values it points to is fine).
func (s *Set) Lines() []*Line { return s.lines }

// InsertIfFits appends line if the set's remaining budget covers its
// rounded size, decrementing the budget. Returns false (does not mutate)
// if there isn't room.
func (s *Set) InsertIfFits(line *Line) bool {
	if s.remainingSize < line.RoundedSize {
		return false
	}
	s.lines = append(s.lines, line)
	s.remainingSize -= line.RoundedSize
	return true
}

// Lookup returns the line with the given tag, or nil if absent.
func (s *Set) Lookup(tag uint32) *Line {
	for _, l := range s.lines {
		if l.Tag == tag {
			return l
		}
	}
	return nil
}

// removeAt deletes the line at index i via swap-remove (order is not
// preserved) and reclaims its bytes. Returns the removed line.
func (s *Set) removeAt(i int) *Line {
	removed := s.lines[i]
	last := len(s.lines) - 1
	s.lines[i] = s.lines[last]
	s.lines = s.lines[:last]
	s.remainingSize += removed.RoundedSize
	return removed
}

// RemoveByTag removes the first line matching tag. Returns nil if absent.
func (s *Set) RemoveByTag(tag uint32) *Line {
	for i, l := range s.lines {
		if l.Tag == tag {
			return s.removeAt(i)
		}
	}
	return nil
}

// RemoveBySize removes the first line whose rounded size equals size.
// Returns nil if no line matches.
func (s *Set) RemoveBySize(size int) *Line {
	for i, l := range s.lines {
		if l.RoundedSize == size {
			return s.removeAt(i)
		}
	}
	return nil
}

// RemoveByTimestamp removes the first line whose timestamp equals ts.
// Returns nil if no line matches.
func (s *Set) RemoveByTimestamp(ts int) *Line {
	for i, l := range s.lines {
		if l.Timestamp == ts {
			return s.removeAt(i)
		}
	}
	return nil
}

// RemoveByIndex removes the line at position i in the current (unordered)
// slice. Returns nil if i is out of range.
func (s *Set) RemoveByIndex(i int) *Line {
	if i < 0 || i >= len(s.lines) {
		return nil
	}
	return s.removeAt(i)
}

// touchOthers increments the timestamp of every line other than hit; hit
// itself should already have been reset to 0 by the caller. A nil hit ages
// every resident line, which is what a miss does before admission.
func (s *Set) touchOthers(hit *Line) {
	for _, l := range s.lines {
		if l != hit {
			l.Timestamp++
		}
	}
}

// weightClassOf returns the CAMP weight-table index for a rounded size
// (4 -> 0, 8 -> 1, ..., 32 -> 7).
func weightClassOf(roundedSize int) int {
	return roundedSize/4 - 1
}

// campWeight returns the current CAMP weight for a rounded size.
func (s *Set) campWeight(roundedSize int) int {
	return s.campWeights[weightClassOf(roundedSize)]
}

// pushHistory appends a rounded size to the CAMP history ring, wrapping at
// historySize. The counter resets to 0 after an
// insertion that reaches the end, so the next write starts overwriting
// from index 0 again (natural ring, mod historySize).
func (s *Set) pushHistory(roundedSize int) {
	idx := s.campHistoryLen % historySize
	s.campHistory[idx] = roundedSize
	s.campHistoryLen++
	if s.campHistoryLen >= historySize {
		s.campHistoryLen = 0
	}
}

// historySnapshot returns the set's raw CAMP history ring for the trainer
// to fold into its global histogram. Slots never written (a set that has
// seen fewer than historySize hits/evictions) are zero and skipped by the
// caller, matching the reference's "history > 0" guard.
func (s *Set) historySnapshot() [historySize]int {
	return s.campHistory
}

// resetHistory clears the CAMP history ring, called by the trainer after
// folding a set's history into the retrain histogram.
func (s *Set) resetHistory() {
	s.campHistory = [historySize]int{}
	s.campHistoryLen = 0
}

// setWeights installs a freshly trained CAMP weight table.
func (s *Set) setWeights(weights [weightClasses]int) {
	s.campWeights = weights
}
