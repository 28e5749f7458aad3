package services

import "github.com/microtweet/microtweet/internal/models"

// ShortUser is the minimal user projection embedded in profiles and
// tweets, deliberately not a full nested profile.
type ShortUser struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type Profile struct {
	ID        uint64      `json:"id"`
	Name      string      `json:"name"`
	Followers []ShortUser `json:"followers"`
	Following []ShortUser `json:"following"`
}

type TweetView struct {
	ID          uint64      `json:"id"`
	Content     string      `json:"content"`
	Author      ShortUser   `json:"author"`
	Attachments []string    `json:"attachments"`
	Likes       []ShortUser `json:"likes"`
}

func shortUser(u *models.User) ShortUser {
	return ShortUser{ID: u.ID, Name: u.Name}
}

func shortUsers(users []*models.User) []ShortUser {
	result := make([]ShortUser, 0, len(users))
	for _, u := range users {
		result = append(result, shortUser(u))
	}
	return result
}
