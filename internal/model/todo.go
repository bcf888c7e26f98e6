package model

// Todo is the domain model for a todo entry.
// Only Completed ever changes after creation, and it changes by replacement:
// reducers build a new Todo instead of flipping the field in place.
type Todo struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
