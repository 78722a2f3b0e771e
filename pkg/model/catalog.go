package model

// PassCatalog is the read-only set of seat passes on sale, in source order.
type PassCatalog struct {
	passes []SeatPass
}

func NewPassCatalog(passes []SeatPass) *PassCatalog {
	owned := make([]SeatPass, len(passes))
	copy(owned, passes)
	return &PassCatalog{passes: owned}
}

// FindByType returns a fresh slice; callers may modify it freely.
func (c *PassCatalog) FindByType(t PassType) []SeatPass {
	result := make([]SeatPass, 0, len(c.passes))
	for _, p := range c.passes {
		if p.Type == t {
			result = append(result, p)
		}
	}
	return result
}

func (c *PassCatalog) Len() int {
	return len(c.passes)
}

type LockerCatalog struct {
	passes []LockerPass
}

func NewLockerCatalog(passes []LockerPass) *LockerCatalog {
	owned := make([]LockerPass, len(passes))
	copy(owned, passes)
	return &LockerCatalog{passes: owned}
}

// FindFor returns the first locker pass sold alongside the given seat pass,
// matched on type and duration.
func (c *LockerCatalog) FindFor(seat SeatPass) (LockerPass, bool) {
	for _, p := range c.passes {
		if p.Type == seat.Type && p.Duration == seat.Duration {
			return p, true
		}
	}
	return LockerPass{}, false
}

func (c *LockerCatalog) Len() int {
	return len(c.passes)
}
