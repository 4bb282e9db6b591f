// Package server exposes the codec over a WebSocket JSON bridge so UIs and
// scripts can encode, decode and edit grids without linking the Go code.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dfbb/hamcode/internal/hamcode"
	"github.com/dfbb/hamcode/internal/history"
	"github.com/dfbb/hamcode/internal/render"
)

// Server handles WebSocket clients on /ws. Each client sends one JSON request
// per message and receives one JSON response.
type Server struct {
	addr     string
	hist     *history.History
	upgrader websocket.Upgrader
}

// New returns a Server that will listen on addr. hist may be nil to disable
// history recording.
func New(addr string, hist *history.History) *Server {
	return &Server{
		addr: addr,
		hist: hist,
		upgrader: websocket.Upgrader{
			// The bridge is meant for local UIs; any page may connect.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

type request struct {
	Op   string   `json:"op"`
	Text string   `json:"text,omitempty"`
	Seed *int64   `json:"seed,omitempty"`
	Grid []string `json:"grid,omitempty"`
	Row  int      `json:"row,omitempty"`
	Col  int      `json:"col,omitempty"`
}

type response struct {
	OK          bool     `json:"ok"`
	Error       string   `json:"error,omitempty"`
	Grid        []string `json:"grid,omitempty"`
	Text        string   `json:"text,omitempty"`
	Corrected   int      `json:"corrected,omitempty"`
	HexFallback bool     `json:"hex_fallback,omitempty"`
}

// Handler returns the HTTP handler serving the bridge.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	case err := <-errc:
		return err
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()
	slog.Info("client connected", "remote", r.RemoteAddr)

	for {
		var req request
		if err := conn.ReadJSON(&req); err != nil {
			slog.Info("client gone", "remote", r.RemoteAddr, "err", err)
			return
		}
		resp := s.handle(req)
		if err := conn.WriteJSON(resp); err != nil {
			slog.Error("write failed", "remote", r.RemoteAddr, "err", err)
			return
		}
	}
}

func (s *Server) handle(req request) response {
	switch req.Op {
	case "encode":
		return s.encode(req)
	case "decode":
		return s.decode(req)
	case "overlay":
		g, err := gridFromLines(req.Grid)
		if err != nil {
			return response{Error: err.Error()}
		}
		return response{OK: true, Grid: gridLines(hamcode.ApplyFinderOverlay(g))}
	case "toggle":
		g, err := gridFromLines(req.Grid)
		if err != nil {
			return response{Error: err.Error()}
		}
		return response{OK: true, Grid: gridLines(g.Toggle(req.Row, req.Col))}
	default:
		return response{Error: fmt.Sprintf("unknown op %q", req.Op)}
	}
}

func (s *Server) encode(req request) response {
	src := hamcode.NewRandSource(time.Now().UnixNano())
	if req.Seed != nil {
		src = hamcode.NewRandSource(*req.Seed)
	}
	g, err := hamcode.EncodeText(req.Text, src)
	s.record("encode", req.Text, "", 0, err == nil)
	if err != nil {
		return response{Error: err.Error()}
	}
	return response{OK: true, Grid: gridLines(g)}
}

func (s *Server) decode(req request) response {
	g, err := gridFromLines(req.Grid)
	if err != nil {
		return response{Error: err.Error()}
	}
	res, err := hamcode.DecodeGrid(g)
	if err != nil {
		s.record("decode", "", "", 0, false)
		return response{Error: err.Error()}
	}
	s.record("decode", "", res.Text, res.Corrected, true)
	return response{
		OK:          true,
		Text:        res.Text,
		Corrected:   res.Corrected,
		HexFallback: res.HexFallback,
	}
}

func (s *Server) record(op, input, output string, corrected int, ok bool) {
	if s.hist == nil {
		return
	}
	if err := s.hist.Record(op, input, output, corrected, ok); err != nil {
		slog.Warn("history record failed", "op", op, "err", err)
	}
}

func gridLines(g hamcode.Grid) []string {
	return strings.Split(strings.TrimSuffix(render.ASCII(g), "\n"), "\n")
}

func gridFromLines(lines []string) (hamcode.Grid, error) {
	return render.Parse(strings.NewReader(strings.Join(lines, "\n")))
}
