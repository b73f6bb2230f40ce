package models

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Form field names
const (
	FieldDate        = "date"
	FieldDescription = "description"
	FieldTitle       = "title"
	FieldItems       = "items"
	FieldPrompt      = "prompt"
)

// Domain types

type Schedule struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type Checklist struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

type ChecklistItem struct {
	ID          int64  `json:"id"`
	ChecklistID int64  `json:"checklist_id"`
	ItemName    string `json:"item_name"`
	IsChecked   bool   `json:"is_checked"`
}

type ChecklistWithItems struct {
	Checklist Checklist       `json:"checklist"`
	Items     []ChecklistItem `json:"items"`
}

// Page types, passed to the HTML templates

type SchedulePage struct {
	Schedules []Schedule
}

type ChecklistPage struct {
	Checklists []Checklist
}

type ChecklistDetailPage struct {
	Checklist Checklist
	Items     []ChecklistItem
}

type AIPage struct {
	UserInput string
	Result    string
	Intent    string
}

// Response types

type ScheduleListResponse struct {
	Schedules []Schedule `json:"schedules"`
	Start     string     `json:"start,omitempty"`
	End       string     `json:"end,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
