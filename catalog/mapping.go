package catalog

// The conversions below are structural only: nil in, nil out, no defaults.

func ToDTO(c *Character) *CharacterDTO {
	if c == nil {
		return nil
	}
	return &CharacterDTO{
		ID:      c.ID,
		Name:    c.Name,
		Status:  c.Status,
		Species: c.Species,
		Gender:  c.Gender,
		Origin:  c.Origin,
	}
}

func ToEntity(dto *CharacterDTO) *Character {
	if dto == nil {
		return nil
	}
	return &Character{
		ID:      dto.ID,
		Name:    dto.Name,
		Status:  dto.Status,
		Species: dto.Species,
		Gender:  dto.Gender,
		Origin:  dto.Origin,
	}
}

func ToFormDTO(c *Character) *CharacterForm {
	if c == nil {
		return nil
	}
	return &CharacterForm{
		ID:      c.ID,
		Name:    c.Name,
		Species: c.Species,
		Gender:  c.Gender,
		Origin:  c.Origin,
		Status:  c.Status,
	}
}

func FromFormDTO(form *CharacterForm) *Character {
	if form == nil {
		return nil
	}
	return &Character{
		ID:      form.ID,
		Name:    form.Name,
		Species: form.Species,
		Gender:  form.Gender,
		Origin:  form.Origin,
		Status:  form.Status,
	}
}

// ToDTOList keeps input order. The result is never nil so it encodes as [].
func ToDTOList(characters []Character) []CharacterDTO {
	out := make([]CharacterDTO, 0, len(characters))
	for i := range characters {
		out = append(out, *ToDTO(&characters[i]))
	}
	return out
}

func ToFormDTOList(characters []Character) []CharacterForm {
	out := make([]CharacterForm, 0, len(characters))
	for i := range characters {
		out = append(out, *ToFormDTO(&characters[i]))
	}
	return out
}

func ToFavoriteDTO(f *Favorite) *FavoriteDTO {
	if f == nil {
		return nil
	}
	return &FavoriteDTO{
		ID:          f.ID,
		CharacterID: f.CharacterID,
		Name:        f.Name,
		Status:      f.Status,
		Image:       f.Image,
		Species:     f.Species,
		Gender:      f.Gender,
		Origin:      f.Origin,
	}
}

func FromFavoriteDTO(dto *FavoriteDTO) *Favorite {
	if dto == nil {
		return nil
	}
	return &Favorite{
		ID:          dto.ID,
		CharacterID: dto.CharacterID,
		Name:        dto.Name,
		Status:      dto.Status,
		Image:       dto.Image,
		Species:     dto.Species,
		Gender:      dto.Gender,
		Origin:      dto.Origin,
	}
}

func ToFavoriteDTOList(favorites []Favorite) []FavoriteDTO {
	out := make([]FavoriteDTO, 0, len(favorites))
	for i := range favorites {
		out = append(out, *ToFavoriteDTO(&favorites[i]))
	}
	return out
}
