package domain

// SeatMap models the seat choice of one trip-viewing session. The inventory
// is fixed at construction; only the selection changes.
type SeatMap struct {
	totalSeats  int
	unavailable map[int]struct{}
	selected    int
}

// SeatView is the presentation state of a single seat.
type SeatView struct {
	ID        int
	Available bool
	Selected  bool
}

func NewSeatMap(totalSeats int, unavailableSeats []int) (SeatMap, error) {
	if totalSeats < 1 {
		return SeatMap{}, &InvalidRangeError{TotalSeats: totalSeats}
	}

	unavailable := make(map[int]struct{}, len(unavailableSeats))

	for _, id := range unavailableSeats {
		if id < 1 || id > totalSeats {
			return SeatMap{}, &InvalidRangeError{TotalSeats: totalSeats, SeatID: id}
		}

		unavailable[id] = struct{}{}
	}

	return SeatMap{
		totalSeats:  totalSeats,
		unavailable: unavailable,
	}, nil
}

// Select applies a seat click. Unavailable and out-of-range seats are
// ignored, choosing the current seat clears the selection and any other seat
// replaces it.
func (m SeatMap) Select(seatID int) SeatMap {
	if !m.IsAvailable(seatID) {
		return m
	}

	if m.selected == seatID {
		m.selected = 0
		return m
	}

	m.selected = seatID

	return m
}

func (m SeatMap) Clear() SeatMap {
	m.selected = 0
	return m
}

func (m SeatMap) IsSelected(seatID int) bool {
	return m.selected != 0 && m.selected == seatID
}

func (m SeatMap) IsAvailable(seatID int) bool {
	if seatID < 1 || seatID > m.totalSeats {
		return false
	}

	_, taken := m.unavailable[seatID]

	return !taken
}

// Selected returns the selected seat and whether there is one.
func (m SeatMap) Selected() (int, bool) {
	return m.selected, m.selected != 0
}

func (m SeatMap) TotalSeats() int {
	return m.totalSeats
}

// Columns splits the seats into the two columns of the bus layout: odd ids
// on the left of the aisle, even ids on the right, both ascending.
func (m SeatMap) Columns() (left, right []SeatView) {
	left = make([]SeatView, 0, (m.totalSeats+1)/2)
	right = make([]SeatView, 0, m.totalSeats/2)

	for id := 1; id <= m.totalSeats; id++ {
		seat := SeatView{
			ID:        id,
			Available: m.IsAvailable(id),
			Selected:  m.IsSelected(id),
		}

		if id%2 == 1 {
			left = append(left, seat)
		} else {
			right = append(right, seat)
		}
	}

	return left, right
}
