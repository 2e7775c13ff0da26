package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/todo/pkg/tasklist"
)

// Transport names how the task tools are exposed.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

const (
	DefaultAddr = "127.0.0.1:8080"
	DefaultPath = "/mcp"

	shutdownGrace = 5 * time.Second
)

// Runner serves the task list tools until ctx is done or stdin closes.
type Runner struct {
	Store   *tasklist.Store
	Version string

	Transport Transport

	// Addr and Path locate the HTTP endpoint.
	Addr string
	Path string
	// CertFile and KeyFile switch HTTP to TLS. Give both or neither.
	CertFile string
	KeyFile  string
	// Ready receives the endpoint URL once the HTTP listener is bound.
	Ready func(url string)
}

func (r Runner) Do(ctx context.Context) error {
	if r.Store == nil {
		return errors.New("mcp: no task store")
	}

	switch r.Transport {
	case "", TransportStdio:
		return server.ServeStdio(r.newServer())
	case TransportHTTP:
		return r.serveHTTP(ctx)
	default:
		return fmt.Errorf("mcp: unknown transport %q, expected stdio or http", r.Transport)
	}
}

func (r Runner) newServer() *server.MCPServer {
	version := r.Version
	if version == "" {
		version = "dev"
	}
	srv := server.NewMCPServer("todo", version,
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and change the todo task list. Task ids may be shortened to any unique prefix."),
		server.WithRecovery(),
	)
	registerTools(srv, NewService(r.Store))
	return srv
}

func (r Runner) tls() (bool, error) {
	if (r.CertFile == "") != (r.KeyFile == "") {
		return false, errors.New("mcp: tls needs both a cert and a key file")
	}
	return r.CertFile != "", nil
}

func (r Runner) serveHTTP(ctx context.Context) error {
	useTLS, err := r.tls()
	if err != nil {
		return err
	}
	addr := r.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	path := CleanPath(r.Path)

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(r.newServer()))
	hs := &http.Server{Handler: mux}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("mcp: listen %s: %w", addr, err)
	}
	if r.Ready != nil {
		r.Ready(EndpointURL(ln.Addr(), path, useTLS))
	}

	stop := context.AfterFunc(ctx, func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = hs.Shutdown(sctx)
	})
	defer stop()

	if useTLS {
		err = hs.ServeTLS(ln, r.CertFile, r.KeyFile)
	} else {
		err = hs.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// CleanPath trims p and roots it, falling back to DefaultPath.
func CleanPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return DefaultPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// EndpointURL is the address a client should dial for a listener bound
// to a. Wildcard binds are reported as loopback.
func EndpointURL(a net.Addr, path string, useTLS bool) string {
	scheme := "http"
	if useTLS {
		scheme = "https"
	}
	host := a.String()
	if tcp, ok := a.(*net.TCPAddr); ok {
		ip := tcp.IP
		if ip == nil || ip.IsUnspecified() {
			ip = net.IPv4(127, 0, 0, 1)
		}
		host = net.JoinHostPort(ip.String(), fmt.Sprint(tcp.Port))
	}
	return scheme + "://" + host + path
}
