package request

// BoardSlot addresses one kanban slot (column status + index in column).
type BoardSlot struct {
	Status string `json:"status" binding:"required"`
	Index  int    `json:"index"`
}

// BoardMoveRequest is a drag-and-drop drop event. A nil destination means
// the drag was cancelled outside any column.
type BoardMoveRequest struct {
	Source      BoardSlot  `json:"source" binding:"required"`
	Destination *BoardSlot `json:"destination"`
}

// WidgetMoveRequest reorders the dashboard widget list.
type WidgetMoveRequest struct {
	Source      int `json:"source"`
	Destination int `json:"destination"`
}
