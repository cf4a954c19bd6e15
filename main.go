package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lucas-Veillard/KanalBack/api"
	"github.com/Lucas-Veillard/KanalBack/config"
	"github.com/Lucas-Veillard/KanalBack/db"
	"github.com/Lucas-Veillard/KanalBack/handlers"
	"github.com/Lucas-Veillard/KanalBack/store"
	"github.com/Lucas-Veillard/KanalBack/utils"
	"github.com/goccy/go-json"
	"github.com/gocql/gocql"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	defer utils.HandlePanic()
	if err := godotenv.Load(); err != nil {
		log.Println(".env introuvable, on continue avec l'environnement.")
	}
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	config.LoadConfig()
	cfg := config.GetConfig()

	utils.InitLogger(cfg.Debug)
	if cfg.Debug {
		utils.Info("Running in debug mode")
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Requested-With",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
	}))

	session, err := db.Connect(cfg)
	if err != nil {
		utils.Fatal("ScyllaDB connection failed", "error", err)
	}
	db.ApplyMigrations(session)

	messageStore := store.New(session, store.Options{
		WriteConsistency: parseLevelOrDie(cfg.ScyllaWriteConsistency, "SCYLLA_WRITE_CONSISTENCY"),
		ReadConsistency:  parseLevelOrDie(cfg.ScyllaReadConsistency, "SCYLLA_READ_CONSISTENCY"),
	})

	api.SetupRoutes(app, handlers.New(messageStore))

	port := cfg.Port
	if port == "" {
		port = "3000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			utils.Fatal("Server stopped", "error", err)
		}
	}()

	// Arrêt propre : on ferme le serveur, puis la session.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Info("Shutdown demandé...")
	if err := app.Shutdown(); err != nil {
		utils.Error("Erreur au shutdown du serveur", "error", err)
	}
	session.Close()
	utils.Success("Arrêt propre terminé.")
}

// Les défauts de consistance viennent de l'environnement : un défaut
// invalide est une erreur de déploiement, pas une requête à dégrader.
func parseLevelOrDie(token, envVar string) gocql.Consistency {
	level, ok := store.ParseLevel(token)
	if !ok {
		utils.Fatal("Invalid consistency level in environment", "var", envVar, "value", token)
	}
	return level
}
