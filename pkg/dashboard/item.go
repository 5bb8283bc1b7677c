package dashboard

// Status is the lifecycle stage of a dashboard item.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Label returns the human readable form of s.
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "To do"
	case StatusInProgress:
		return "In progress"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// ItemDTO is the wire shape served by the backend.
type ItemDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

// Item is the domain view of a dashboard entry.
type Item struct {
	ID       string
	Title    string
	Status   Status
	Progress int
}

// Done reports whether the item is finished.
func (i Item) Done() bool {
	return i.Status == StatusDone || i.Progress >= 100
}

// ToItem maps a DTO into an Item, clamping progress into 0..100.
func ToItem(dto ItemDTO) Item {
	progress := min(max(dto.Progress, 0), 100)
	return Item{
		ID:       dto.ID,
		Title:    dto.Title,
		Status:   Status(dto.Status),
		Progress: progress,
	}
}

func ToItems(dtos []ItemDTO) []Item {
	items := make([]Item, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, ToItem(dto))
	}
	return items
}

// ToDTO is the inverse of ToItem.
func ToDTO(item Item) ItemDTO {
	return ItemDTO{
		ID:       item.ID,
		Title:    item.Title,
		Status:   string(item.Status),
		Progress: item.Progress,
	}
}
