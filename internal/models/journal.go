package models

// JournalEntry is a single journal record. ID is assigned by the store on
// creation; Date and UserID are set at creation and never changed by updates.
type JournalEntry struct {
	ID     string        `json:"id,omitempty"`
	Title  string        `json:"title"`
	Body   string        `json:"body"`
	Date   LocalDateTime `json:"date"`
	Tags   []string      `json:"tags"`
	UserID string        `json:"userId,omitempty"`
}
