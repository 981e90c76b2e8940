package daemon

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	"stitch/internal/config"
	"stitch/internal/editor"
	"stitch/internal/library"
)

// Version is reported by the health endpoint.
var Version = "0.1.0"

// Options wires the server to the library it exposes.
type Options struct {
	Store  *config.Store
	Index  *library.Index
	Editor *editor.Editor
	Logger zerolog.Logger

	// Extension and Recursive are the scan defaults when a request does not
	// override them.
	Extension string
	Recursive bool
}

// Server stores the latest scan and the operation history and exposes HTTP
// handlers.
type Server struct {
	store     *config.Store
	index     *library.Index
	editor    *editor.Editor
	logger    zerolog.Logger
	extension string
	recursive bool

	mu         sync.RWMutex
	videos     []library.Video
	scanned    bool
	operations []Operation

	// opMu serializes media operations; only one ffmpeg runs at a time.
	opMu sync.Mutex
}

func NewServer(opts Options) *Server {
	ext := opts.Extension
	if ext == "" {
		ext = library.DefaultExtension
	}
	return &Server{
		store:     opts.Store,
		index:     opts.Index,
		editor:    opts.Editor,
		logger:    opts.Logger,
		extension: ext,
		recursive: opts.Recursive,
	}
}

// Routes returns the HTTP handler for all endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(s.logRequestMiddleware)

	// CORS to allow local client
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/health", s.handleHealth)
	r.MethodFunc(http.MethodGet, "/config", s.handleConfig)
	r.MethodFunc(http.MethodPut, "/config", s.handleConfig)

	r.Get("/videos", s.handleVideos)
	r.Post("/videos/join", s.handleJoin)
	r.Route("/videos/{index}", func(r chi.Router) {
		r.Get("/", s.handleGetVideo)
		r.Get("/file", s.handleVideoFile)
		r.Post("/trim", s.handleTrim)
		r.Post("/thumbnail-sheet", s.handleThumbnailSheet)
	})

	r.Get("/operations", s.handleOperations)

	return r
}
