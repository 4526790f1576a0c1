package events

// Event is a single calendar entry, a competition or a planned gym
// session on a given day.
type Event struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Title string `json:"title"`
}
