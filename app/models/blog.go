package models

// BlogPost is a post from the remote blog collection.
// gorm tags exist only for the local offline snapshot table.
type BlogPost struct {
	ID        string `json:"_id" gorm:"primaryKey;column:id"`
	Title     string `json:"title" gorm:"size:255"`
	Content   string `json:"content" gorm:"type:text"`
	Image     string `json:"image" gorm:"size:512"`
	Author    string `json:"author" gorm:"size:255"`
	CreatedAt string `json:"createdAt,omitempty" gorm:"size:64"`
}
