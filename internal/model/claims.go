package model

import "github.com/golang-jwt/jwt/v5"

type AccessClaims struct {
	jwt.RegisteredClaims

	UserUUID string `json:"user_uuid"`
	RealmID  string `json:"realm_id"`
}
