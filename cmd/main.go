package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/rs/cors"

	"sqlgateway/configs"
	"sqlgateway/internal/connection"
	"sqlgateway/internal/export"
	"sqlgateway/internal/query"
	"sqlgateway/pkg/middleware"
	"sqlgateway/pkg/res"
)

func App(conf *configs.Config) http.Handler {
	router := http.NewServeMux()

	// repositories
	queryRepository := query.NewRepository()
	exportRepository := export.NewRepository()

	// services
	connectionService := connection.NewService()
	queryService := query.NewService(queryRepository, conf)
	exportService := export.NewService(exportRepository, conf)

	// controllers
	connection.NewController(router, connection.ControllerDeps{
		Service: connectionService,
	})
	query.NewController(router, query.ControllerDeps{
		Service: queryService,
	})
	export.NewController(router, export.ControllerDeps{
		Service: exportService,
	})

	router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		res.Json(w, map[string]string{"status": "ok"}, http.StatusOK)
	})

	c := cors.New(cors.Options{
		AllowedOrigins: conf.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	return middleware.Logging(c.Handler(router))
}

func main() {
	conf := configs.LoadConfig()
	app := App(conf)

	server := http.Server{
		Addr:    ":" + conf.Port,
		Handler: app,
	}
	fmt.Println("Server is listening on port " + conf.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
