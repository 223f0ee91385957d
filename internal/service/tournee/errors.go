package tournee

import "errors"

var (
	ErrNoActiveSession = errors.New("no active delivery session")
)
