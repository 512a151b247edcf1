package chunk

import "fmt"

// offset into a recording, or its total length
type Clock struct {
	Hours   int
	Minutes int
	Seconds int
}

// HH:MM:SS, zero padded
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}

// Reaches reports whether every component of c is at least the matching
// component of total. It compares fields independently, not elapsed time.
func (c Clock) Reaches(total Clock) bool {
	return c.Hours >= total.Hours &&
		c.Minutes >= total.Minutes &&
		c.Seconds >= total.Seconds
}

// start time of the chunk at index, advancing 30s per chunk
func StartOf(index int) Clock {
	seconds := 0
	if index%2 != 0 {
		seconds = 30
	}
	minutes := index / 2
	return Clock{
		Hours:   minutes / 60,
		Minutes: minutes % 60,
		Seconds: seconds,
	}
}
