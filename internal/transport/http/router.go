package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	appmw "github.com/apostle2t/jobboard/internal/transport/http/middleware"
	"github.com/apostle2t/jobboard/pkg/httputil"
)

type Deps struct {
	Chat      *ChatHandlers
	Jobs      *JobHandlers
	Auth      *AuthHandlers
	Users     *UserHandlers
	Bookmarks *BookmarkHandlers

	AllowedOrigins    []string
	RequestsPerMinute int
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(httputil.MiddlewareRequestID)
	r.Use(httputil.MiddlewareLogging)

	if len(d.AllowedOrigins) == 0 {
		d.AllowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if d.RequestsPerMinute <= 0 {
		d.RequestsPerMinute = 300
	}
	limiter := appmw.NewIPRateLimiter(d.RequestsPerMinute)

	// health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(pr chi.Router) {
		pr.Use(limiter.Handler)

		pr.Route("/auth", func(ar chi.Router) {
			ar.Post("/login", d.Auth.Login)
			ar.Post("/register", d.Auth.Register)
			ar.Post("/logout", d.Auth.Logout)
		})

		pr.Route("/jobs", func(jr chi.Router) {
			jr.Get("/", d.Jobs.List)
			jr.Get("/recent", d.Jobs.Recent)
			jr.Get("/search", d.Jobs.Search)
			jr.Get("/english", d.Jobs.English)
		})

		pr.Route("/users", func(ur chi.Router) {
			ur.Get("/me", d.Users.Me)
			ur.Route("/{id}", func(uu chi.Router) {
				uu.Get("/", d.Users.Get)
				uu.Put("/", d.Users.Update)
				uu.Delete("/", d.Users.Delete)
				uu.Post("/profile-picture", d.Users.UploadPicture)
				uu.Delete("/profile-picture", d.Users.DeletePicture)
			})
		})

		pr.Route("/chat", func(cr chi.Router) {
			cr.Get("/users", d.Chat.ListUsers)
			cr.Get("/conversations", d.Chat.ListConversations)
			cr.Route("/conversations/{id}", func(cc chi.Router) {
				cc.Get("/messages", d.Chat.GetMessages)
				cc.Post("/messages", d.Chat.SendMessage)
				cc.Post("/read", d.Chat.MarkRead)
			})
			cr.Post("/share", d.Chat.ShareJob)
			cr.Post("/pending-share", d.Chat.SavePendingShare)
		})

		pr.Route("/bookmarks", func(br chi.Router) {
			br.Get("/", d.Bookmarks.List)
			br.Post("/", d.Bookmarks.Add)
			br.Delete("/", d.Bookmarks.Clear)
			br.Delete("/{id}", d.Bookmarks.Remove)
		})
	})

	return r
}
