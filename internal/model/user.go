package model

type User struct {
	UUID     string `db:"uuid"`
	RealmID  string `db:"realm_id"`
	Nickname string `db:"nickname"`
}

type UserUpdateMessage struct {
	UserUUID string `json:"user_uuid"`
	RealmID  string `json:"realm_id"`
	Nickname string `json:"nickname"`
}
