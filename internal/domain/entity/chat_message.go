package entity

// ChatMessage is a message in a shop chat, stored in the `chats` collection.
// Its creation notifies every shop member except the sender.
type ChatMessage struct {
	ID         string `firestore:"-"`
	ShopID     string `firestore:"shopId"`
	SenderID   string `firestore:"senderId"`
	SenderName string `firestore:"senderName"`
	Message    string `firestore:"message"`
}
