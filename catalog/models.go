package catalog

// Character is a catalog entry as persisted by the store.
type Character struct {
	ID      uint64 `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Species string `gorm:"size:255;not null" json:"species"`
	Gender  string `gorm:"size:255;not null" json:"gender"`
	Origin  string `gorm:"size:100;not null" json:"origin"`
	Status  string `gorm:"size:50;not null" json:"status"`
}

// TableName keeps the table name used by the existing frontend database.
func (Character) TableName() string {
	return "charaktere"
}

// Favorite is a point-in-time copy of a character's display fields. CharacterID
// is recorded for reference only and is not a foreign key: deleting or editing
// the source character never touches its favorites.
type Favorite struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	CharacterID uint64  `gorm:"column:charakter_id;not null;index" json:"charakter_id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Status      string  `gorm:"size:255;not null" json:"status"`
	Image       string  `gorm:"size:512;not null" json:"image"`
	Species     *string `gorm:"size:255" json:"species,omitempty"`
	Gender      *string `gorm:"size:255" json:"gender,omitempty"`
	Origin      *string `gorm:"size:255" json:"origin,omitempty"`
}

func (Favorite) TableName() string {
	return "favoriten"
}
