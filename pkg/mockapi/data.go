package mockapi

import (
	"strconv"

	"github.com/wintryx/progressmaker/pkg/dashboard"
)

var featureTitles = [...]string{
	"User authentication",
	"Dashboard widgets",
	"Notification center",
	"Dynamic forms",
	"File uploads",
	"Role based access",
	"Audit log",
	"Dark mode",
	"Search",
	"CSV export",
	"Email digests",
	"Webhooks",
	"Billing",
	"Team invitations",
	"Activity feed",
	"API tokens",
	"Localization",
	"Onboarding tour",
	"Usage analytics",
	"Data retention",
}

// seedItems returns the fixed dashboard data set.
func seedItems() []dashboard.ItemDTO {
	items := make([]dashboard.ItemDTO, 0, len(featureTitles))
	for i, title := range featureTitles {
		item := dashboard.ItemDTO{
			ID:    strconv.Itoa(i + 1),
			Title: "Feature: " + title,
		}
		switch i % 3 {
		case 0:
			item.Status = string(dashboard.StatusTodo)
		case 1:
			item.Status = string(dashboard.StatusInProgress)
			item.Progress = 15 + (i*13)%70
		default:
			item.Status = string(dashboard.StatusDone)
			item.Progress = 100
		}
		items = append(items, item)
	}
	return items
}
