package dashboard

import "errors"

var (
	ErrLoadItems = errors.New("dashboard: failed to load items")
	ErrLoadItem  = errors.New("dashboard: failed to load item")
	ErrRefresh   = errors.New("dashboard: failed to register refresh ticket")
)
