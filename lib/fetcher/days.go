package fetcher

import (
	"fmt"
	"strconv"
)

const (
	FirstDay = 1
	LastDay  = 25
)

func AllDays() []int {
	days := make([]int, 0, LastDay-FirstDay+1)
	for day := FirstDay; day <= LastDay; day++ {
		days = append(days, day)
	}
	return days
}

// ParseDay accepts a decimal day number within [FirstDay, LastDay].
func ParseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: not a number", s)
	}
	if day < FirstDay || day > LastDay {
		return 0, fmt.Errorf("invalid day %d: must be between %d and %d", day, FirstDay, LastDay)
	}
	return day, nil
}
