package clock

import "time"

// System системные часы в UTC, единственная реализация вне тестов.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}
