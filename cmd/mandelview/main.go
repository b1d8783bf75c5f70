// mandelview serves an interactive Mandelbrot viewer: a static page in
// ./static plus a websocket endpoint taking JSON navigation commands and
// answering each with a PNG-encoded frame.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	port := flag.Int("port", 8080, "http listen port")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler)
	mux.Handle("/", http.FileServer(http.Dir("./static")))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", *port)
	return srv.ListenAndServe()
}
