package main

import (
	"dcasim/cmd"
	"log"
)

func main() {
	apiHandler, cfg, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	err = apiHandler.StartApi(cfg.ApiPort)
	if err != nil {
		log.Fatal(err)
	}
}
