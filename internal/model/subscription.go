package model

type Subscription struct {
	ID          string `db:"id"`
	UserUUID    string `db:"user_uuid"`
	RecipientID string `db:"recipient_id"`
	Active      bool   `db:"active"`
}
