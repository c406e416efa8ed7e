package characters

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"characters_back/catalog"
)

// handleListFavorites godoc
// @Summary List favorites
// @Tags Favorites
// @Produce json
// @Success 200 {array} catalog.FavoriteDTO
// @Router /api/characters/favoriten [get]
func (m *Module) handleListFavorites(c *gin.Context) {
	list, err := m.favorites.List(c.Request.Context())
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// handleCreateFavorite godoc
// @Summary Save a favorite snapshot
// @Description Any id in the body is ignored; the referenced character is not checked.
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body catalog.FavoriteDTO true "Snapshot"
// @Success 200 {object} catalog.FavoriteDTO
// @Failure 400 {object} errorEnvelope
// @Router /api/characters/favoriten [post]
func (m *Module) handleCreateFavorite(c *gin.Context) {
	var dto catalog.FavoriteDTO
	if err := bindJSON(c, &dto); err != nil {
		m.writeError(c, err)
		return
	}
	created, err := m.favorites.Create(c.Request.Context(), &dto)
	if err != nil {
		m.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// handleDeleteFavorite godoc
// @Summary Delete a favorite
// @Tags Favorites
// @Param id path int true "Favorite ID"
// @Success 204
// @Failure 404 {object} errorEnvelope
// @Router /api/characters/favoriten/{id} [delete]
func (m *Module) handleDeleteFavorite(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		m.writeError(c, err)
		return
	}
	if err := m.favorites.Delete(c.Request.Context(), id); err != nil {
		m.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
