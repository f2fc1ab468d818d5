package domain

// Event is an inbound chat message as delivered by the host framework.
// The host adapter is responsible for mapping its native message shape
// onto this interface; nothing below the server layer knows about the
// host SDK.
type Event interface {
	// MessageText returns the raw text of the message.
	MessageText() string

	// SenderID returns the sender's user identifier, or "" if the host
	// could not resolve one.
	SenderID() string

	// GroupID returns the group (chat) identifier for group messages,
	// or "" for direct messages.
	GroupID() string
}
