package dto

// Event payloads delivered by the document-store pipeline. Each reactor takes
// a typed created or before/after value; the surrounding invocation and retry
// machinery belongs to the hosting platform.

// RepairSnapshot is the repair document state carried in an event.
type RepairSnapshot struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Model        string `json:"model"`
	Status       int    `json:"status"`
}

// RepairCreatedEvent fires once per new repair order.
type RepairCreatedEvent struct {
	Repair RepairSnapshot `json:"repair"`
}

// RepairUpdatedEvent fires on every repair update with both snapshots.
type RepairUpdatedEvent struct {
	Before RepairSnapshot `json:"before"`
	After  RepairSnapshot `json:"after"`
}

// ChatMessageCreatedEvent fires once per chat message.
type ChatMessageCreatedEvent struct {
	ChatID     string `json:"chatId"`
	ShopID     string `json:"shopId"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
	Message    string `json:"message"`
}
