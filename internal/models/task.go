package models

// Task is a single to-do item. The table is named "todos" so databases
// created by earlier releases can be opened; their rows have OwnerID 0.
type Task struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	Title     string `gorm:"column:baslik;not null" json:"baslik"`
	Completed bool   `gorm:"column:tamamlandi;not null;default:false" json:"tamamlandi"`
	OwnerID   uint64 `gorm:"index;not null;default:0" json:"owner_id"`

	// Relations
	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Task) TableName() string {
	return "todos"
}
