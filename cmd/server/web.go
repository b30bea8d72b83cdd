package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"github.com/retropad/server/internal/catalog"
	"github.com/retropad/server/internal/config"
	"github.com/retropad/server/internal/handler"
	"github.com/retropad/server/internal/room"
	"github.com/retropad/server/internal/ws"
)

const httpTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Controllers connect from phones on arbitrary origins.
		return true
	},
}

// serve wires the hub, room service, reaper, and HTTP routes, then runs
// until interrupted.
func serve(ctx context.Context, cfg *config.Config) error {
	cfg.SetupLogger()

	hub := ws.NewHub()
	store := room.NewStore()
	svc := room.NewService(store, hub)
	router := handler.NewRouter(svc)
	reaper := room.NewReaper(svc, hub, cfg.ReapInterval, cfg.HostGrace)
	scanner := &catalog.Scanner{RomsDir: cfg.RomsDir, ImagesDir: cfg.ImagesDir}

	hub.OnMessage = router.HandleMessage
	hub.OnDisconnect = router.HandleDisconnect

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go hub.Run()
	go reaper.Run(ctx)

	mux := newMux(cfg, hub, store, scanner)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           mux,
		IdleTimeout:       10 * time.Minute,
		ReadHeaderTimeout: httpTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newMux builds the HTTP routes. Cover images are served directly under
// /image/ so the URLs in game descriptors resolve without a fronting proxy.
func newMux(cfg *config.Config, hub *ws.Hub, store *room.Store, scanner *catalog.Scanner) *httprouter.Router {
	mux := httprouter.New()
	mux.GET("/healthz", serveHealth())
	mux.GET("/api/games", serveGames(scanner))
	mux.GET("/rooms/:code/qr", serveRoomQR(cfg, store))
	mux.GET("/ws", serveWebSocket(hub))
	if cfg.ImagesDir != "" {
		mux.ServeFiles("/image/*filepath", http.Dir(cfg.ImagesDir))
	}
	return mux
}

func serveHealth() httprouter.Handle {
	return func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}
}

// serveGames lists the host's game library. The directory is rescanned per
// request so dropped-in ROMs appear without a restart.
func serveGames(scanner *catalog.Scanner) httprouter.Handle {
	return func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		games, err := scanner.Scan()
		if err != nil {
			slog.Error("catalog scan failed", "error", err)
			http.Error(w, "failed to scan game library", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(games)
	}
}

// serveRoomQR renders a PNG QR code of the controller join URL for a room.
func serveRoomQR(cfg *config.Config, store *room.Store) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		code := strings.ToUpper(p.ByName("code"))
		if store.Get(code) == nil {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		base := cfg.PublicURL
		if base == "" {
			scheme := "http"
			if r.TLS != nil {
				scheme = "https"
			}
			if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
				scheme = proto
			}
			base = scheme + "://" + r.Host
		}
		url := strings.TrimSuffix(base, "/") + "/controller/" + code

		const qrSize = 320 // mobile-friendly size
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	}
}

// serveWebSocket upgrades the connection and registers it with the hub.
// A host resuming after a network blip passes its previous connection ID via
// ?cid= so the room's grace window applies to it.
func serveWebSocket(hub *ws.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", "error", err)
			return
		}

		id := r.URL.Query().Get("cid")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		client := ws.NewClient(id, hub, conn)
		hub.Register <- client

		go client.WritePump()
		go client.ReadPump()
	}
}
