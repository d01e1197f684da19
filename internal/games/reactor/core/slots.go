package core

// NextAvailableSlot returns the slot a newly played module should go to.
// Overheated slots are reclaimed before empty ones; among equals the lowest
// index wins.
func NextAvailableSlot(reactor []Module) (int, bool) {
	if i := firstWithStatus(reactor, SlotOverheated); i >= 0 {
		return i, true
	}
	if i := firstWithStatus(reactor, SlotEmpty); i >= 0 {
		return i, true
	}
	return -1, false
}

// NextMatchingModule returns the inactive slot that continues a chain after
// last. An exact condition match is preferred; otherwise the first inactive
// wildcard is returned. Scan order is ascending slot index.
func NextMatchingModule(reactor []Module, last string) (int, bool) {
	for i, m := range reactor {
		if m.Status == SlotInactive && m.Condition == last {
			return i, true
		}
	}
	for i, m := range reactor {
		if m.Status == SlotInactive && m.IsWildcard() {
			return i, true
		}
	}
	return -1, false
}

// HottestInactive returns the inactive slot with the most heat.
// Ties go to the lowest index.
func HottestInactive(reactor []Module) (int, bool) {
	best := -1
	for i, m := range reactor {
		if m.Status != SlotInactive {
			continue
		}
		if best < 0 || m.Heat > reactor[best].Heat {
			best = i
		}
	}
	return best, best >= 0
}

func firstWithStatus(reactor []Module, s Status) int {
	for i, m := range reactor {
		if m.Status == s {
			return i
		}
	}
	return -1
}
