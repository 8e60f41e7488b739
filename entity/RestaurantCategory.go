package entity

// Category groups restaurants by cuisine; Name matches Restaurant.Cuisines entries.
type Category struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	Name     string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Icon     string `json:"icon"`
	Position int    `gorm:"index" json:"-"`
}
