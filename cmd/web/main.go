package main

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samaamohammed255-droid/leaf-grace/internal/config"
	"github.com/samaamohammed255-droid/leaf-grace/internal/web"
)

const (
	defaultHost    = "0.0.0.0"
	defaultPort    = "8080"
	defaultLogFile = "leaf-grace.log"
)

//go:embed index.html
var htmlPage string

func main() {
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	logFile := config.GetEnv("WEB_LOG_FILE", defaultLogFile)

	logger := web.InitLogger(logFile)
	defer logger.Sync()

	params, err := config.LoadParams()
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}

	server := web.NewServer(params, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, htmlPage)
	})
	mux.HandleFunc("/ws", server.HandleWS)
	mux.HandleFunc("/healthz", server.HandleHealthz)

	addr := fmt.Sprintf("%s:%s", host, port)
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		logger.Infof("Leaf Grace listening on http://%s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	server.Shutdown()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("shutdown error: %v", err)
	}
}
