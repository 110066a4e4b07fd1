// Package server accepts TCP connections and serves the request/reply
// protocol on each of them concurrently.
package server

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/snake-arena/internal/logger"
	"github.com/sbilibin2017/snake-arena/internal/protocol"
	"go.uber.org/zap"
)

// DefaultMaxLineBytes bounds a single request.
const DefaultMaxLineBytes = 64 * 1024

// Handler turns one request into one reply.
// *protocol.Router is the production implementation.
type Handler interface {
	Serve(ctx context.Context, line string) string
}

// Server runs one goroutine per accepted connection.
type Server struct {
	addr         string
	handler      Handler
	idleTimeout  time.Duration
	maxLineBytes int

	mu       sync.Mutex
	listener net.Listener
	conns    map[net.Conn]struct{}
	wg       sync.WaitGroup
	ready    chan struct{}
}

// Option configures a Server.
type Option func(*Server)

// WithIdleTimeout closes connections that send nothing for d. Zero disables the timeout.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.idleTimeout = d
	}
}

// WithMaxLineBytes sets the longest accepted request.
func WithMaxLineBytes(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxLineBytes = n
		}
	}
}

// New creates a Server that will listen on addr.
func New(addr string, handler Handler, opts ...Option) *Server {
	s := &Server{
		addr:         addr,
		handler:      handler,
		maxLineBytes: DefaultMaxLineBytes,
		conns:        make(map[net.Conn]struct{}),
		ready:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListenAndServe listens on the configured address and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled. On return the
// listener and every open connection are closed and all connection goroutines
// have exited.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()
	close(s.ready)

	logger.Log.Infow("TCP server listening", "addr", ln.Addr().String())

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
		}
		s.closeAll()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			s.closeAll()
			s.wg.Wait()
			if ctx.Err() != nil {
				logger.Log.Info("TCP server stopped gracefully")
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		if !s.track(conn) {
			conn.Close()
			continue
		}

		s.wg.Add(1)
		go s.handleConn(ctx, conn)
	}
}

// Addr blocks until the server is listening and returns the bound address.
func (s *Server) Addr() net.Addr {
	<-s.ready
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listener.Addr()
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	log := logger.WithConn(uuid.New().String(), conn.RemoteAddr().String())
	log.Infow("connection opened")

	defer func() {
		if rec := recover(); rec != nil {
			log.Errorw("panic while serving connection", "panic", rec, "stack", string(debug.Stack()))
		}
		conn.Close()
		s.untrack(conn)
		s.wg.Done()
		log.Infow("connection closed")
	}()

	s.serveConn(ctx, conn, log)
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn, log *zap.SugaredLogger) {
	scanner := bufio.NewScanner(conn)
	// Twice the limit plus one: the scanner only compacts its buffer once half
	// of it is consumed, and every read must still fit maxLineBytes+1 bytes.
	size := 2 * (s.maxLineBytes + 1)
	scanner.Buffer(make([]byte, 0, size), size)
	scanner.Split(scanMessages(s.maxLineBytes))

	for {
		if s.idleTimeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(s.idleTimeout)); err != nil {
				log.Warnw("failed to set read deadline", "error", err)
				return
			}
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
				log.Infow("connection read ended", "error", err)
			}
			return
		}

		msg := scanner.Text()
		if _, err := protocol.Parse(msg); errors.Is(err, protocol.ErrEmptyRequest) {
			return
		}

		reply := s.handler.Serve(ctx, msg)

		// Replies carry no terminator; the client reads one chunk per request.
		if _, err := io.WriteString(conn, reply); err != nil {
			log.Infow("connection write failed", "error", err)
			return
		}
	}
}

// scanMessages splits the stream into requests. A request ends at '\n' or,
// when the buffered bytes hold no '\n', at the end of what one read returned.
// A trailing '\r' is dropped. Requests over maxBytes fail with bufio.ErrTooLong.
func scanMessages(maxBytes int) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if len(data) == 0 {
			return 0, nil, nil
		}

		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			if i > maxBytes {
				return 0, nil, bufio.ErrTooLong
			}
			return i + 1, bytes.TrimSuffix(data[:i], []byte("\r")), nil
		}

		if len(data) > maxBytes {
			return 0, nil, bufio.ErrTooLong
		}
		return len(data), bytes.TrimSuffix(data, []byte("\r")), nil
	}
}

// track registers conn unless the server is shutting down.
func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conns == nil {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, conn)
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
	for conn := range s.conns {
		conn.Close()
	}
	s.conns = nil
}
