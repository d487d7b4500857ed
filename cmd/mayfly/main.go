package main

import (
	"flag"
	"log"

	"github.com/mayfly-http/mayfly"
	"github.com/mayfly-http/mayfly/handler"
	"github.com/mayfly-http/mayfly/router/static"
	"github.com/mayfly-http/mayfly/storage"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:4221", "address to listen on")
	directory := flag.String("directory", ".", "directory served under /files/")
	flag.Parse()

	files := storage.NewDir(*directory)

	r := static.New()
	r.Get("/", handler.Root)
	r.Get("/user-agent", handler.UserAgent)
	r.Get("/echo/:text", handler.Echo)
	r.Get("/files/:file", handler.FileGet(files))
	r.Post("/files/:file", handler.FileCreate(files))
	r.Put("/files/:file", handler.FileCreate(files))

	app := mayfly.New(*addr).NotifyOnStart(func() {
		log.Printf("listening on %s, serving files from %s", *addr, *directory)
	})

	log.Fatal(app.Serve(r))
}
