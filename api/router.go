package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(service.corsMiddleware())

	api := router.Group("/api")

	api.GET("/health", service.health)
	api.GET("/quota", service.inquireQuota)

	// prompt tooling, pure functions over the request body
	api.POST("/prompt/parse", service.parsePrompt)
	api.POST("/prompt/format", service.formatPrompt)
	api.POST("/prompt/strip-comments", service.stripComments)
	api.POST("/prompt/dry-run", service.dryRunPrompt)

	api.GET("/snippets", service.listSnippets)
	api.POST("/snippets", service.createSnippet)
	api.GET("/snippets/:id", service.getSnippet)
	api.PUT("/snippets/:id", service.updateSnippet)
	api.DELETE("/snippets/:id", service.deleteSnippet)
	api.POST("/snippets/:id/rename", service.renameSnippet)

	api.GET("/presets", service.listCharacterPresets)
	api.POST("/presets", service.createCharacterPreset)
	api.GET("/presets/:id", service.getCharacterPreset)
	api.PUT("/presets/:id", service.updateCharacterPreset)
	api.DELETE("/presets/:id", service.deleteCharacterPreset)
	api.POST("/presets/:id/rename", service.renameCharacterPreset)

	api.GET("/main-presets", service.listMainPresets)
	api.POST("/main-presets", service.createMainPreset)
	api.GET("/main-presets/:id", service.getMainPreset)
	api.PUT("/main-presets/:id", service.updateMainPreset)
	api.DELETE("/main-presets/:id", service.deleteMainPreset)

	api.POST("/tasks", service.createTask)
	api.GET("/tasks/:id", service.getTask)

	api.GET("/records/recent", service.listRecentRecords)
	api.GET("/records/:id", service.getRecord)
	api.DELETE("/records/:id", service.deleteRecord)
	api.POST("/records/batch", service.deleteRecordsBatch)

	api.GET("/settings/generation", service.getGenerationSettings)
	api.PUT("/settings/generation", service.putGenerationSettings)

	api.GET("/archives", service.listArchives)
	api.POST("/archives", service.createArchives)
	api.GET("/archives/dates", service.listArchivableDates)
	api.POST("/archives/selected", service.createArchivesForDates)
	api.DELETE("/archives/:name", service.deleteArchive)
	api.GET("/archives/:name/download", service.downloadArchive)

	// generated images are served straight from disk
	router.Static("/gallery", service.gallery.Root)

	server.Handler = router
	service.router = router
}
