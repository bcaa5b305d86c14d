package models

import "time"

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Address        string   `json:"address"`
	Preferences    []string `json:"preferences"`
	ProfilePicture string   `json:"profilePicture"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) Clone() User {
	out := *u
	out.Preferences = append([]string{}, u.Preferences...)
	return out
}
