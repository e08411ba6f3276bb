package router

import (
	"encoding/json"
	"mime/multipart"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// HandlerFunc is the signature of route handlers
type HandlerFunc func(*Context) error

// Middleware wraps a handler with additional behavior
type Middleware func(HandlerFunc) HandlerFunc

var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

// ResponseWriter wraps http.ResponseWriter and records the status code
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func (w *ResponseWriter) WriteHeader(code int) {
	if !w.written {
		w.status = code
		w.written = true
		w.ResponseWriter.WriteHeader(code)
	}
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Status returns the status code written so far, defaulting to 200
func (w *ResponseWriter) Status() int {
	if !w.written {
		return http.StatusOK
	}
	return w.status
}

// Context carries request scoped state through the handler chain
type Context struct {
	Writer  *ResponseWriter
	Request *http.Request

	params map[string]string
	values map[string]any
	mu     sync.RWMutex
}

// JSON writes a JSON response with the given status code
func (c *Context) JSON(code int, payload any) error {
	c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.Writer.WriteHeader(code)
	return json.NewEncoder(c.Writer).Encode(payload)
}

// Status writes the status code with no body
func (c *Context) Status(code int) {
	c.Writer.WriteHeader(code)
}

// Redirect sends an HTTP redirect to the given location
func (c *Context) Redirect(code int, location string) error {
	http.Redirect(c.Writer, c.Request, location, code)
	return nil
}

// Param returns the value of a path parameter
func (c *Context) Param(name string) string {
	return c.params[name]
}

// Query returns the value of a URL query parameter
func (c *Context) Query(name string) string {
	return c.Request.URL.Query().Get(name)
}

// FormFile returns the uploaded file for the given form field
func (c *Context) FormFile(name string) (*multipart.FileHeader, error) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		return nil, err
	}
	_, header, err := c.Request.FormFile(name)
	return header, err
}

// ShouldBindJSON decodes the request body into obj and validates binding tags
func (c *Context) ShouldBindJSON(obj any) error {
	if err := json.NewDecoder(c.Request.Body).Decode(obj); err != nil {
		return err
	}
	return validate.Struct(obj)
}

// ShouldBind is an alias for ShouldBindJSON for JSON request bodies
func (c *Context) ShouldBind(obj any) error {
	return c.ShouldBindJSON(obj)
}

// Set stores a value in the request context
func (c *Context) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.values == nil {
		c.values = make(map[string]any)
	}
	c.values[key] = value
}

// Get retrieves a value from the request context
func (c *Context) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.values[key]
	return value, ok
}

// GetString retrieves a string value from the request context
func (c *Context) GetString(key string) string {
	if value, ok := c.Get(key); ok {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

// GetUint retrieves a uint value from the request context
func (c *Context) GetUint(key string) uint {
	value, ok := c.Get(key)
	if !ok {
		return 0
	}
	switch v := value.(type) {
	case uint:
		return v
	case int:
		return uint(v)
	case int64:
		return uint(v)
	case float64:
		return uint(v)
	case string:
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			return uint(parsed)
		}
	}
	return 0
}

// ClientIP returns the originating client address
func (c *Context) ClientIP() string {
	if forwarded := c.Request.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := c.Request.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}

type route struct {
	method     string
	segments   []string
	handler    HandlerFunc
	middleware []Middleware
}

// Router dispatches HTTP requests to registered handlers
type Router struct {
	routes     []route
	middleware []Middleware
	notFound   HandlerFunc
	statics    map[string]string
}

// New creates an empty Router
func New() *Router {
	return &Router{
		statics: make(map[string]string),
	}
}

// Use appends global middleware, applied to every route
func (r *Router) Use(mw Middleware) {
	r.middleware = append(r.middleware, mw)
}

// Group creates a route group rooted at the given prefix
func (r *Router) Group(prefix string) *RouterGroup {
	return &RouterGroup{router: r, prefix: strings.TrimSuffix(prefix, "/")}
}

// Static serves files under dir at the given URL prefix
func (r *Router) Static(prefix, dir string) {
	r.statics[strings.TrimSuffix(prefix, "/")] = dir
}

// NotFound sets the handler invoked when no route matches
func (r *Router) NotFound(handler HandlerFunc) {
	r.notFound = handler
}

// GET registers a handler for GET requests on the root router
func (r *Router) GET(path string, handler HandlerFunc) {
	r.handle(http.MethodGet, path, handler, nil)
}

// POST registers a handler for POST requests on the root router
func (r *Router) POST(path string, handler HandlerFunc) {
	r.handle(http.MethodPost, path, handler, nil)
}

func (r *Router) handle(method, path string, handler HandlerFunc, groupMiddleware []Middleware) {
	r.routes = append(r.routes, route{
		method:     method,
		segments:   splitPath(path),
		handler:    handler,
		middleware: groupMiddleware,
	})
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// match reports whether the route matches the request path, filling params
func (rt *route) match(segments []string) (map[string]string, bool) {
	var params map[string]string
	for i, seg := range rt.segments {
		if strings.HasPrefix(seg, "*") {
			if params == nil {
				params = make(map[string]string)
			}
			params[seg[1:]] = strings.Join(segments[i:], "/")
			return params, true
		}
		if i >= len(segments) {
			return nil, false
		}
		if strings.HasPrefix(seg, ":") {
			if params == nil {
				params = make(map[string]string)
			}
			params[seg[1:]] = segments[i]
			continue
		}
		if seg != segments[i] {
			return nil, false
		}
	}
	if len(segments) != len(rt.segments) {
		return nil, false
	}
	return params, true
}

// ServeHTTP implements http.Handler
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	ctx := &Context{
		Writer:  &ResponseWriter{ResponseWriter: w},
		Request: req,
	}

	// Static file prefixes take precedence
	for prefix, dir := range r.statics {
		if strings.HasPrefix(req.URL.Path, prefix+"/") {
			file := strings.TrimPrefix(req.URL.Path, prefix+"/")
			http.ServeFile(w, req, dir+"/"+file)
			return
		}
	}

	segments := splitPath(req.URL.Path)
	for i := range r.routes {
		rt := &r.routes[i]
		if rt.method != req.Method {
			continue
		}
		params, ok := rt.match(segments)
		if !ok {
			continue
		}
		ctx.params = params

		handler := rt.handler
		for j := len(rt.middleware) - 1; j >= 0; j-- {
			handler = rt.middleware[j](handler)
		}
		for j := len(r.middleware) - 1; j >= 0; j-- {
			handler = r.middleware[j](handler)
		}

		if err := handler(ctx); err != nil && !ctx.Writer.written {
			_ = ctx.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}

	if r.notFound != nil {
		handler := r.notFound
		for j := len(r.middleware) - 1; j >= 0; j-- {
			handler = r.middleware[j](handler)
		}
		_ = handler(ctx)
		return
	}

	http.NotFound(w, req)
}

// Run starts the HTTP server on the given address
func (r *Router) Run(addr string) error {
	return http.ListenAndServe(addr, r)
}

// RouterGroup registers routes under a shared prefix and middleware chain
type RouterGroup struct {
	router     *Router
	prefix     string
	middleware []Middleware
}

// Group creates a nested group
func (g *RouterGroup) Group(prefix string) *RouterGroup {
	child := &RouterGroup{
		router: g.router,
		prefix: g.prefix + "/" + strings.Trim(prefix, "/"),
	}
	child.middleware = append(child.middleware, g.middleware...)
	return child
}

// Use appends middleware to the group chain
func (g *RouterGroup) Use(mw Middleware) {
	g.middleware = append(g.middleware, mw)
}

func (g *RouterGroup) handle(method, path string, handler HandlerFunc) {
	full := g.prefix
	if trimmed := strings.Trim(path, "/"); trimmed != "" {
		full += "/" + trimmed
	}
	mws := make([]Middleware, len(g.middleware))
	copy(mws, g.middleware)
	g.router.handle(method, full, handler, mws)
}

func (g *RouterGroup) GET(path string, handler HandlerFunc)    { g.handle(http.MethodGet, path, handler) }
func (g *RouterGroup) POST(path string, handler HandlerFunc)   { g.handle(http.MethodPost, path, handler) }
func (g *RouterGroup) PUT(path string, handler HandlerFunc)    { g.handle(http.MethodPut, path, handler) }
func (g *RouterGroup) PATCH(path string, handler HandlerFunc)  { g.handle(http.MethodPatch, path, handler) }
func (g *RouterGroup) DELETE(path string, handler HandlerFunc) { g.handle(http.MethodDelete, path, handler) }
