package notification

// Message is a composed push notification ready for dispatch: visible text,
// a small string key-value payload for the client, and the delivery profile.
type Message struct {
	Title   string
	Body    string
	Data    map[string]string
	Profile Profile
	Badge   int // iOS badge count; 0 leaves the badge untouched
}
