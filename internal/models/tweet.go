package models

type Tweet struct {
	ID       uint64 `json:"id" gorm:"primaryKey"`
	Content  string `json:"content" gorm:"type:text;not null"`
	AuthorID uint64 `json:"author_id" gorm:"not null;index"`

	Author   User      `json:"author" gorm:"foreignKey:AuthorID"`
	Pictures []Picture `json:"pictures" gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE"`
	Likes    []Like    `json:"likes" gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE"`
}

// Like is an edge with its own identity, keyed by the (user, tweet) pair.
type Like struct {
	UserID  uint64 `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	TweetID uint64 `json:"tweet_id" gorm:"primaryKey;autoIncrement:false"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}

// Picture may exist with TweetID = nil: uploaded first, attached to a
// tweet later by updating the foreign key.
type Picture struct {
	ID       uint64  `json:"id" gorm:"primaryKey"`
	TweetID  *uint64 `json:"tweet_id" gorm:"index"`
	FilePath string  `json:"file_path" gorm:"not null"`
}

func (Tweet) TableName() string {
	return "tweets"
}

func (Like) TableName() string {
	return "likes"
}

func (Picture) TableName() string {
	return "pictures"
}
