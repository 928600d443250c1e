package core

// Hero is the only record of the tour
// mutable (name only)
type Hero struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:text;not null"`
}
