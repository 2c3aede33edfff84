package availability

import "errors"

var (
	ErrDayBooked     = errors.New("day is already booked")
	ErrDayOutOfRange = errors.New("day is outside the displayed month")
)

// Snapshot is one calendar widget's view of a month: the booked-day set
// plus an optional selected day.
type Snapshot struct {
	year     int
	month    int
	booked   map[int]struct{}
	selected *int
}

func NewSnapshot(year, month int, bookedDays []int) *Snapshot {
	booked := make(map[int]struct{}, len(bookedDays))
	for _, day := range bookedDays {
		booked[day] = struct{}{}
	}
	return &Snapshot{year: year, month: month, booked: booked}
}

func (s *Snapshot) Year() int  { return s.year }
func (s *Snapshot) Month() int { return s.month }

func (s *Snapshot) IsBooked(day int) bool {
	_, ok := s.booked[day]
	return ok
}

func (s *Snapshot) Selected() *int {
	return s.selected
}

// Select rejects booked days with no state change.
func (s *Snapshot) Select(day int) error {
	if day < 1 || day > 31 {
		return ErrDayOutOfRange
	}
	if s.IsBooked(day) {
		return ErrDayBooked
	}
	s.selected = &day
	return nil
}

// ChangeMonth swaps in the new month's booked set and clears any
// previously selected day.
func (s *Snapshot) ChangeMonth(year, month int, bookedDays []int) {
	s.year = year
	s.month = month
	s.booked = make(map[int]struct{}, len(bookedDays))
	for _, day := range bookedDays {
		s.booked[day] = struct{}{}
	}
	s.selected = nil
}
