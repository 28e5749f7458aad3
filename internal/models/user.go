package models

type User struct {
	ID     uint64 `json:"id" gorm:"primaryKey"`
	APIKey string `json:"-" gorm:"column:api_key;uniqueIndex;not null"`
	Name   string `json:"name" gorm:"not null"`
}

// Follow is a directed edge: follower follows followee.
type Follow struct {
	FollowerID uint64 `json:"follower_id" gorm:"primaryKey;autoIncrement:false"`
	FolloweeID uint64 `json:"followee_id" gorm:"primaryKey;autoIncrement:false"`

	Follower User `json:"-" gorm:"foreignKey:FollowerID"`
	Followee User `json:"-" gorm:"foreignKey:FolloweeID"`
}

func (User) TableName() string {
	return "users"
}

func (Follow) TableName() string {
	return "follows"
}
