package main

import (
	"log"

	"github.com/aura-studio/bucketlist/server"
)

func main() {
	var opts []server.Option
	if path, err := server.FindDefaultServeConfigFile(); err == nil {
		opts = append(opts, server.WithServeConfigFile(path))
	}

	if err := server.Serve(opts...); err != nil {
		log.Fatal(err)
	}
}
