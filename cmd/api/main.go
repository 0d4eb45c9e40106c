package main

import (
	_ "resto_pos/docs"
	"resto_pos/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Restaurant POS API
// @version         1.0
// @description     Point-of-sale core for a small restaurant: menu catalog, customer registry, business config and receipt building with IGV breakdown. State is persisted as whole-store snapshots in DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
