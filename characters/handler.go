package characters

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"characters_back/catalog"
)

// handleGetAll godoc
// @Summary List characters
// @Tags Characters
// @Produce json
// @Success 200 {array} catalog.CharacterDTO
// @Failure 500 {object} errorEnvelope
// @Router /api/characters/all [get]
func (m *Module) handleGetAll(c *gin.Context) {
	list, err := m.characters.GetAll(c.Request.Context())
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// handleGetAllForms godoc
// @Summary List characters in form view
// @Tags Characters
// @Produce json
// @Success 200 {array} catalog.CharacterForm
// @Router /api/characters/all/form [get]
func (m *Module) handleGetAllForms(c *gin.Context) {
	list, err := m.characters.GetAllForms(c.Request.Context())
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// handleGetByID godoc
// @Summary Get a character
// @Tags Characters
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} catalog.CharacterDTO
// @Failure 400 {object} errorEnvelope
// @Failure 404 {object} errorEnvelope
// @Router /api/characters/{id} [get]
func (m *Module) handleGetByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		m.writeError(c, err)
		return
	}
	dto, err := m.characters.GetByID(c.Request.Context(), id)
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// handleGetForm godoc
// @Summary Get a character for editing
// @Tags Characters
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} catalog.CharacterForm
// @Failure 404 {object} errorEnvelope
// @Router /api/characters/{id}/edit [get]
func (m *Module) handleGetForm(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		m.writeError(c, err)
		return
	}
	form, err := m.characters.GetFormByID(c.Request.Context(), id)
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// handleCount godoc
// @Summary Count characters
// @Tags Characters
// @Produce json
// @Success 200 {integer} int
// @Router /api/characters/count [get]
func (m *Module) handleCount(c *gin.Context) {
	n, err := m.characters.Count(c.Request.Context())
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// handleCountBySpecies godoc
// @Summary Count characters of a species
// @Tags Characters
// @Produce json
// @Param value path string true "Species, case-insensitive"
// @Success 200 {integer} int
// @Router /api/characters/count/species/{value} [get]
func (m *Module) handleCountBySpecies(c *gin.Context) {
	m.respondCount(c, m.characters.CountBySpecies)
}

// @Summary Count characters with a status
// @Tags Characters
// @Produce json
// @Param value path string true "Status, case-insensitive"
// @Success 200 {integer} int
// @Router /api/characters/count/status/{value} [get]
func (m *Module) handleCountByStatus(c *gin.Context) {
	m.respondCount(c, m.characters.CountByStatus)
}

// @Summary Count characters of a gender
// @Tags Characters
// @Produce json
// @Param value path string true "Gender, case-insensitive"
// @Success 200 {integer} int
// @Router /api/characters/count/gender/{value} [get]
func (m *Module) handleCountByGender(c *gin.Context) {
	m.respondCount(c, m.characters.CountByGender)
}

func (m *Module) respondCount(c *gin.Context, count func(ctx context.Context, value string) (int64, error)) {
	n, err := count(c.Request.Context(), c.Param("value"))
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// handleFilter godoc
// @Summary Filter characters
// @Description Every supplied parameter must match, ignoring case. Missing or blank parameters are ignored.
// @Tags Characters
// @Produce json
// @Param species query string false "Species"
// @Param status query string false "Status"
// @Param gender query string false "Gender"
// @Param origin query string false "Origin"
// @Success 200 {array} catalog.CharacterDTO
// @Router /api/characters/filter [get]
func (m *Module) handleFilter(c *gin.Context) {
	filter := catalog.Filter{
		Species: queryOptional(c, "species"),
		Status:  queryOptional(c, "status"),
		Gender:  queryOptional(c, "gender"),
		Origin:  queryOptional(c, "origin"),
	}
	list, err := m.characters.Filter(c.Request.Context(), filter)
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func queryOptional(c *gin.Context, key string) catalog.Optional {
	value, present := c.GetQuery(key)
	return catalog.OptionalFromQuery(value, present)
}

// handleSearchByName godoc
// @Summary Search characters by name
// @Tags Characters
// @Produce json
// @Param keyword query string true "Part of the name, case-insensitive"
// @Success 200 {array} catalog.CharacterDTO
// @Failure 400 {object} errorEnvelope
// @Router /api/characters/search/name [get]
func (m *Module) handleSearchByName(c *gin.Context) {
	keyword, ok := c.GetQuery("keyword")
	if !ok {
		m.writeError(c, catalog.InvalidData("keyword query parameter is required"))
		return
	}
	list, err := m.characters.SearchByName(c.Request.Context(), keyword)
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// handleDistinctSpecies godoc
// @Summary List species in use
// @Tags Characters
// @Produce json
// @Success 200 {array} string
// @Router /api/characters/distinct/species [get]
func (m *Module) handleDistinctSpecies(c *gin.Context) {
	values, err := m.characters.DistinctSpecies(c.Request.Context())
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

// handleDistinctOrigins godoc
// @Summary List origins in use
// @Tags Characters
// @Produce json
// @Success 200 {array} string
// @Router /api/characters/distinct/origin [get]
func (m *Module) handleDistinctOrigins(c *gin.Context) {
	values, err := m.characters.DistinctOrigins(c.Request.Context())
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

// handleRandom godoc
// @Summary Pick a random character
// @Tags Characters
// @Produce json
// @Success 200 {object} catalog.CharacterDTO
// @Failure 404 {object} errorEnvelope "catalog is empty"
// @Router /api/characters/random [get]
func (m *Module) handleRandom(c *gin.Context) {
	dto, err := m.characters.GetRandom(c.Request.Context())
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// handleCreate godoc
// @Summary Create a character
// @Description Status, gender, species and origin must come from the allowed values.
// @Tags Characters
// @Accept json
// @Produce json
// @Param request body catalog.CharacterDTO true "Character"
// @Success 200 {object} catalog.CharacterDTO
// @Failure 400 {object} errorEnvelope
// @Router /api/characters [post]
func (m *Module) handleCreate(c *gin.Context) {
	var dto catalog.CharacterDTO
	if err := bindJSON(c, &dto); err != nil {
		m.writeError(c, err)
		return
	}
	created, err := m.characters.Create(c.Request.Context(), &dto)
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// handleCreateForm godoc
// @Summary Create a character from the form
// @Tags Characters
// @Accept json
// @Produce json
// @Param request body catalog.CharacterForm true "Character form"
// @Success 201 {object} catalog.CharacterForm
// @Failure 400 {object} errorEnvelope
// @Router /api/characters/create [post]
func (m *Module) handleCreateForm(c *gin.Context) {
	var form catalog.CharacterForm
	if err := bindJSON(c, &form); err != nil {
		m.writeError(c, err)
		return
	}
	created, err := m.characters.CreateFromForm(c.Request.Context(), &form)
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// handleUpdate godoc
// @Summary Replace a character
// @Tags Characters
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body catalog.CharacterDTO true "Character"
// @Success 200 {object} catalog.CharacterDTO
// @Failure 400 {object} errorEnvelope
// @Failure 404 {object} errorEnvelope
// @Router /api/characters/{id} [put]
func (m *Module) handleUpdate(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		m.writeError(c, err)
		return
	}
	var dto catalog.CharacterDTO
	if err := bindJSON(c, &dto); err != nil {
		m.writeError(c, err)
		return
	}
	updated, err := m.characters.Update(c.Request.Context(), id, &dto)
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// handleUpdateForm godoc
// @Summary Replace a character from the form
// @Tags Characters
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body catalog.CharacterForm true "Character form"
// @Success 200 {object} catalog.CharacterForm
// @Failure 400 {object} errorEnvelope
// @Failure 404 {object} errorEnvelope
// @Router /api/characters/{id}/update [put]
func (m *Module) handleUpdateForm(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		m.writeError(c, err)
		return
	}
	var form catalog.CharacterForm
	if err := bindJSON(c, &form); err != nil {
		m.writeError(c, err)
		return
	}
	updated, err := m.characters.UpdateFromForm(c.Request.Context(), id, &form)
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// handleDelete godoc
// @Summary Delete a character
// @Description Favorites that reference the character are kept.
// @Tags Characters
// @Param id path int true "Character ID"
// @Success 204
// @Failure 404 {object} errorEnvelope
// @Router /api/characters/{id} [delete]
func (m *Module) handleDelete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		m.writeError(c, err)
		return
	}
	if err := m.characters.Delete(c.Request.Context(), id); err != nil {
		m.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
