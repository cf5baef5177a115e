// @title           Vagas PG API
// @version         1.0
// @description     Regional job board for Ponta Grossa: companies, jobs, applications and the posting assistant.
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "vagaspg_backend/internal/app"

func main() {
	app.Run()
}
