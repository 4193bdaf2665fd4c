package model

import (
	"time"

	"frigate/shared/model"
)

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID       = "id"
	FieldUsername = "username"
	FieldPassword = "password"
)

type Admin struct {
	ID        string     `db:"id"`
	Username  string     `db:"username"`
	Password  string     `db:"password"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
