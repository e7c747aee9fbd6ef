package main

import (
	_ "projectvoortgang/docs"
	"projectvoortgang/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Projectvoortgang API
// @version         1.0
// @description     Projectopnames (construction progress assessments) backed by DynamoDB, reading budget and actuals from the customer's data warehouse.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
