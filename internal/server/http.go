package server

import (
	"encoding/json"
	"log"
	"net/http"
)

func newMux(h *Hub, logger *log.Logger) *http.ServeMux {
	ws := NewHandler(h, HandlerConfig{Logger: logger})
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", ws.Handle)
	mux.HandleFunc("/state", func(w http.ResponseWriter, r *http.Request) {
		msg := buildStateMsg(h, parseDelay(r.URL.Query().Get("delay")))
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(msg); err != nil {
			ws.logger.Printf("encode state: %v", err)
		}
	})
	return mux
}

func startServer(h *Hub, addr string) {
	log.Fatal(http.ListenAndServe(addr, newMux(h, log.Default())))
}
