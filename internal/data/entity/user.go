package entity

type User struct {
	Base
	Email          string  `db:"email"`
	Name           string  `db:"name"`
	PasswordHash   string  `db:"password"`
	ProfilePicture *string `db:"profile_picture"`
}
