package devproxy

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"cats-form/internal/platform/logger"
)

// Prefix es el único path que se reenvía.
const Prefix = "/cats"

var (
	ErrInvalidTarget = errors.New("devproxy: invalid target")
)

// Proxy reenvía /cats y /cats/... a un upstream fijo. Path, query y método
// pasan tal cual; Host y Origin se reescriben al upstream.
type Proxy struct {
	target *url.URL
	origin string
	log    logger.Logger
	rp     *httputil.ReverseProxy
}

func New(target string, log logger.Logger) (*Proxy, error) {
	if log == nil {
		log = logger.Nop()
	}

	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTarget, target, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w %q: scheme must be http or https", ErrInvalidTarget, target)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w %q: no host", ErrInvalidTarget, target)
	}

	origin := u.Scheme + "://" + u.Host
	p := &Proxy{
		target: u,
		origin: origin,
		log:    log.With(map[string]any{"component": "devproxy", "target": origin}),
	}

	p.rp = &httputil.ReverseProxy{
		Rewrite: p.rewrite,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			p.log.Error("upstream error", map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
				"error":  err,
			})
			http.Error(w, "upstream unavailable", http.StatusBadGateway)
		},
	}
	return p, nil
}

// rewrite equivale a changeOrigin: el upstream ve su propio host y origin.
// No se agregan X-Forwarded-*.
func (p *Proxy) rewrite(pr *httputil.ProxyRequest) {
	pr.SetURL(p.target)
	pr.Out.Host = p.target.Host
	if pr.In.Header.Get("Origin") != "" {
		pr.Out.Header.Set("Origin", p.origin)
	}
}

// Matches replica el montaje por prefijo: /cats y /cats/..., no /catsfoo.
func Matches(path string) bool {
	return path == Prefix || strings.HasPrefix(path, Prefix+"/")
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !Matches(r.URL.Path) {
		http.NotFound(w, r)
		return
	}
	p.log.Debug("forward", map[string]any{"method": r.Method, "path": r.URL.Path})
	p.rp.ServeHTTP(w, r)
}
