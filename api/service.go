package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RhNu/nai-codex/db"
	"github.com/RhNu/nai-codex/gallery"
	"github.com/RhNu/nai-codex/prompt"
	"github.com/RhNu/nai-codex/queue"
	"github.com/RhNu/nai-codex/util"
)

// QuotaClient is the slice of the generation backend the API calls directly.
// Image generation itself goes through the queue.
type QuotaClient interface {
	InquireQuota(ctx context.Context) (uint64, error)
}

type Service struct {
	config    util.Config
	store     db.Store
	queue     queue.Dispatcher
	quota     QuotaClient
	processor *prompt.Processor
	archives  *gallery.ArchiveManager
	gallery   gallery.Paths
	server    *http.Server
	router    *gin.Engine

	// archiving walks and zips whole day folders; one run at a time.
	archiveInFlight atomic.Bool
}

// Returns new service instance with provided config and dependencies.
func NewService(
	config util.Config,
	store db.Store,
	dispatcher queue.Dispatcher,
	quota QuotaClient,
	archives *gallery.ArchiveManager,
	galleryPaths gallery.Paths,
) (*Service, error) {

	service := &Service{
		config:    config,
		store:     store,
		queue:     dispatcher,
		quota:     quota,
		processor: prompt.NewProcessor(db.NewPromptStorage(store)),
		archives:  archives,
		gallery:   galleryPaths,
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time spent writing the response.
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
