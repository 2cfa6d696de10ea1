package booking

import "sort"

// The aggregation helpers below are pure functions of the fetched booking
// set: single pass grouping and counting, no external state.

// ComputeStats tallies bookings by status.
func ComputeStats(bookings []*Booking) Stats {
	s := Stats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case StatusPending:
			s.Pending++
		case StatusAccepted:
			s.Accepted++
		case StatusCompleted:
			s.Completed++
		case StatusRejected:
			s.Rejected++
		}
	}
	return s
}

// ComputeTotalRevenue sums the snapshotted hourly fare over completed
// bookings.
func ComputeTotalRevenue(bookings []*Booking) float64 {
	var total float64
	for _, b := range bookings {
		if b.Status == StatusCompleted {
			total += b.HourlyFare
		}
	}
	return total
}

// ComputeCarStats groups bookings by car name and sorts the groups by
// total count descending. Bookings whose car no longer resolves are
// skipped, matching the display semantics.
func ComputeCarStats(bookings []*Booking) []CarStat {
	byName := make(map[string]*CarStat)
	order := make([]string, 0)

	for _, b := range bookings {
		if b.CarName == nil {
			continue
		}
		name := *b.CarName
		cs, ok := byName[name]
		if !ok {
			cs = &CarStat{CarName: name}
			byName[name] = cs
			order = append(order, name)
		}
		cs.Total++
		switch b.Status {
		case StatusPending:
			cs.Pending++
		case StatusAccepted:
			cs.Accepted++
		case StatusCompleted:
			cs.Completed++
		case StatusRejected:
			cs.Rejected++
		}
	}

	stats := make([]CarStat, 0, len(order))
	for _, name := range order {
		stats = append(stats, *byName[name])
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Total > stats[j].Total
	})
	return stats
}

// ComputeMonthlyBookings counts bookings per "YYYY-MM" creation month.
// The consumer sorts keys when rendering a timeline.
func ComputeMonthlyBookings(bookings []*Booking) map[string]int {
	monthly := make(map[string]int)
	for _, b := range bookings {
		monthly[b.CreatedAt.UTC().Format("2006-01")]++
	}
	return monthly
}
