package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/inkwell-press/inkwell/internal/auth"
	"github.com/inkwell-press/inkwell/internal/config"
	"github.com/inkwell-press/inkwell/internal/database"
	postgresrepo "github.com/inkwell-press/inkwell/internal/repository/postgres"
	"github.com/inkwell-press/inkwell/internal/service"
	fsstore "github.com/inkwell-press/inkwell/internal/storage/fs"
	"github.com/inkwell-press/inkwell/internal/transport/http/handlers"
	"github.com/inkwell-press/inkwell/internal/transport/http/middleware"
	"github.com/inkwell-press/inkwell/internal/transport/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Database
	pool, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Blob store
	blobs, err := fsstore.New(fsstore.Config{BaseDir: cfg.UploadsDir})
	if err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)

	// Services
	tokens := auth.NewTokenService(cfg.JWTSecret)
	userService := service.NewUserService(userRepo, blobs, tokens, logger)
	postService := service.NewPostService(postRepo, userRepo, blobs, logger)

	// Live post feed
	hub := ws.NewHub()
	go hub.Run()
	postService.SetNotifier(ws.NewHubNotifier(hub))

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	postHandler := handlers.NewPostHandler(postService)

	// Auth middleware
	authGate := middleware.Auth(tokens)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/register", userHandler.Register)
		r.Post("/login", userHandler.Login)
		r.Get("/", userHandler.ListAuthors)
		r.Get("/{id}", userHandler.GetProfile)

		r.Group(func(r chi.Router) {
			r.Use(authGate)
			r.Post("/change-avatar", userHandler.ChangeAvatar)
			r.Patch("/edit-user", userHandler.EditProfile)
		})
	})

	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", postHandler.List)
		r.Get("/{id}", postHandler.Get)
		r.Get("/categories/{category}", postHandler.ListByCategory)
		r.Get("/users/{id}", postHandler.ListByCreator)

		r.Group(func(r chi.Router) {
			r.Use(authGate)
			r.Post("/", postHandler.Create)
			r.Patch("/{id}", postHandler.Edit)
			r.Delete("/{id}", postHandler.Delete)
		})
	})

	r.Get("/ws/feed", ws.ServeWS(hub, tokens))

	// Attachments are addressed by stored name from the records.
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))
	r.Get("/uploads/*", uploads.ServeHTTP)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
