// @title        Storefront API
// @version      1.0
// @description  JSON API for a small storefront: news, product catalog,
// @description  order intake and an admin back office.
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("service failed")
		exitFunc(1)
	}
}
