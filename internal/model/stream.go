package model

const (
	// RecipientStream is the recipient type for stream targets. Personal
	// and huddle recipients live in other services and never reach this one.
	RecipientStream = "stream"
)

type StreamList []Stream

type Stream struct {
	ID         string `db:"id" json:"id"`
	RealmID    string `db:"realm_id" json:"realm_id"`
	Name       string `db:"name" json:"name"`
	InviteOnly bool   `db:"invite_only" json:"invite_only"`
}

// IsPublic reports whether the stream is readable without a subscription.
func (s *Stream) IsPublic() bool {
	return !s.InviteOnly
}

// Recipient is the opaque messaging target derived 1:1 from a stream.
// TypeID holds the stream id for recipients of type "stream".
type Recipient struct {
	ID     string `db:"id"`
	Type   string `db:"type"`
	TypeID string `db:"type_id"`
}
