package models

type Question struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Question   string    `gorm:"type:text;not null" json:"question"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
	CategoryID uint      `gorm:"column:category;not null;index" json:"category"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"-"`
	Difficulty int       `gorm:"not null" json:"difficulty"`
}
