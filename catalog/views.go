package catalog

// CharacterDTO is the plain read/write view of a character.
type CharacterDTO struct {
	ID      uint64 `json:"id,omitempty"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	Species string `json:"species"`
	Gender  string `json:"gender"`
	Origin  string `json:"origin"`
}

// CharacterForm is the view used by the create/edit form flows. Its binding
// tags carry the presence and length constraints checked before the
// allow-lists run.
type CharacterForm struct {
	ID      uint64 `json:"id,omitempty"`
	Name    string `json:"name" binding:"required,notblank,min=2,max=100"`
	Species string `json:"species" binding:"required,notblank"`
	Gender  string `json:"gender" binding:"required,notblank"`
	Origin  string `json:"origin" binding:"required,notblank,max=100"`
	Status  string `json:"status" binding:"required,notblank,max=50"`
}

// FavoriteDTO is the wire shape of a favorite snapshot.
type FavoriteDTO struct {
	ID          uint64  `json:"id,omitempty"`
	CharacterID uint64  `json:"charakterId"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Image       string  `json:"image"`
	Species     *string `json:"species"`
	Gender      *string `json:"gender"`
	Origin      *string `json:"origin"`
}
