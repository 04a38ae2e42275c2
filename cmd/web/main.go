package main

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"sshbreak/internal/config"
)

//go:embed index.html
var htmlPage string

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config error", "err", err)
	}

	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", cfg.SSHDisplay)

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})

	addr := net.JoinHostPort(cfg.WebHost, cfg.WebPort)
	log.Info("starting web server", "addr", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal("server error", "err", err)
	}
}
