package main

import (
	"log"
	"net/http"
	"os"

	"github.com/emballage/storefront/app/cmd"
	"github.com/emballage/storefront/app/configs"
	"github.com/emballage/storefront/app/routes"
)

func main() {
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	env := configs.LoadEnv()

	keys, err := configs.LoadSessionKeys(env)
	if err != nil {
		log.Fatalf("Session keys not configured: %v (run `storefront generate-keys`)", err)
	}

	db, err := configs.OpenConnection(env)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("Database connected.")

	router := routes.NewRouter(db, env, keys)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
