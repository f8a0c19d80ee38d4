package vote

import (
	"strconv"
	"strings"
)

// MaxPoints is both the per-note cap and the total budget per participant
const MaxPoints = 5

// Clamp bounds an allocation to the inclusive range [0, MaxPoints]
func Clamp(points int) int {
	if points < 0 {
		return 0
	}
	if points > MaxPoints {
		return MaxPoints
	}
	return points
}

// Parse converts raw input into a clamped allocation.
// Non-numeric input counts as 0. A leading integer prefix is accepted,
// so "3 points" parses as 3 and "2.9" as 2.
func Parse(raw string) int {
	s := strings.TrimSpace(raw)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	val, err := strconv.Atoi(s[:end])
	if err != nil {
		// Overflow: sign decides which bound applies
		if strings.HasPrefix(s, "-") {
			return 0
		}
		return MaxPoints
	}
	return Clamp(val)
}

// Used sums the given own allocations
func Used(own map[string]int) int {
	total := 0
	for _, points := range own {
		total += points
	}
	return total
}

// Remaining returns the unallocated budget, floored at 0
func Remaining(own map[string]int) int {
	left := MaxPoints - Used(own)
	if left < 0 {
		return 0
	}
	return left
}
