package characters

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"characters_back/catalog"
)

// BasePath is where the character API is mounted.
const BasePath = "/api/characters"

// Module exposes the catalog services over HTTP.
type Module struct {
	characters *catalog.Service
	favorites  *catalog.FavoriteService
	logger     *slog.Logger
}

// RegisterRoutes mounts the character and favorites endpoints under BasePath.
func RegisterRoutes(router gin.IRouter, svc *catalog.Service, favs *catalog.FavoriteService, logger *slog.Logger) *Module {
	registerValidators()
	if logger == nil {
		logger = slog.Default()
	}

	module := &Module{characters: svc, favorites: favs, logger: logger.With(slog.String("module", "characters"))}

	group := router.Group(BasePath)
	group.GET("/all", module.handleGetAll)
	group.GET("/all/form", module.handleGetAllForms)
	group.GET("/count", module.handleCount)
	group.GET("/count/species/:value", module.handleCountBySpecies)
	group.GET("/count/status/:value", module.handleCountByStatus)
	group.GET("/count/gender/:value", module.handleCountByGender)
	group.GET("/filter", module.handleFilter)
	group.GET("/search/name", module.handleSearchByName)
	group.GET("/distinct/species", module.handleDistinctSpecies)
	group.GET("/distinct/origin", module.handleDistinctOrigins)
	group.GET("/random", module.handleRandom)
	group.GET("/:id", module.handleGetByID)
	group.GET("/:id/edit", module.handleGetForm)

	group.POST("", module.handleCreate)
	group.POST("/create", module.handleCreateForm)
	group.PUT("/:id", module.handleUpdate)
	group.PUT("/:id/update", module.handleUpdateForm)
	group.DELETE("/:id", module.handleDelete)

	favorites := group.Group("/favoriten")
	favorites.GET("", module.handleListFavorites)
	favorites.POST("", module.handleCreateFavorite)
	favorites.DELETE("/:id", module.handleDeleteFavorite)

	return module
}

// parseID accepts positive decimal identifiers only.
func parseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, catalog.InvalidData("invalid id: " + raw)
	}
	return id, nil
}
