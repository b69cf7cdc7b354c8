// Package router mounts the versioned API route groups on a gin engine.
package router

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

// RouteRegistrar registers its routes under a parent group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router mounts registrars under /api/{version}. Middleware given to Use
// wraps those routes only, so /health and /swagger stay outside it.
type Router struct {
	engine     *gin.Engine
	apiVersion string
	middleware gin.HandlersChain
	registrars []RouteRegistrar
}

// RouterOption customizes NewRouter
type RouterOption func(*Router)

// WithAPIVersion replaces the default "v1" path segment
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) { r.apiVersion = version }
}

func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{engine: engine, apiVersion: "v1"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BasePath is the prefix of every API route
func (r *Router) BasePath() string {
	return path.Join("/api", r.apiVersion)
}

func (r *Router) Use(middleware ...gin.HandlerFunc) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

func (r *Router) Register(registrars ...RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrars...)
	return r
}

// Setup mounts everything registered so far. Call it once.
func (r *Router) Setup() {
	api := r.engine.Group(r.BasePath(), r.middleware...)
	for _, reg := range r.registrars {
		reg.RegisterRoutes(api)
	}
}

// Route is one endpoint, its path relative to the API base path
type Route struct {
	Method string
	Path   string
}

type endpoint struct {
	Route
	chain gin.HandlersChain
}

// DomainGroup collects the endpoints of one resource before they are
// mounted, so the route table can be inspected without an engine.
type DomainGroup struct {
	name       string
	prefix     string
	middleware gin.HandlersChain
	endpoints  []endpoint
	children   []*DomainGroup
}

func NewDomainGroup(name, prefix string) *DomainGroup {
	return &DomainGroup{name: name, prefix: prefix}
}

// Name identifies the group in logs
func (dg *DomainGroup) Name() string {
	return dg.name
}

// Use adds middleware for the group's endpoints and its subgroups
func (dg *DomainGroup) Use(middleware ...gin.HandlerFunc) *DomainGroup {
	dg.middleware = append(dg.middleware, middleware...)
	return dg
}

func (dg *DomainGroup) Handle(method, relativePath string, handlers ...gin.HandlerFunc) *DomainGroup {
	dg.endpoints = append(dg.endpoints, endpoint{Route: Route{Method: method, Path: relativePath}, chain: handlers})
	return dg
}

func (dg *DomainGroup) GET(relativePath string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodGet, relativePath, handlers...)
}

func (dg *DomainGroup) POST(relativePath string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodPost, relativePath, handlers...)
}

func (dg *DomainGroup) PUT(relativePath string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodPut, relativePath, handlers...)
}

func (dg *DomainGroup) DELETE(relativePath string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodDelete, relativePath, handlers...)
}

// Group adds a nested group under prefix and returns it
func (dg *DomainGroup) Group(name, prefix string) *DomainGroup {
	child := NewDomainGroup(name, prefix)
	dg.children = append(dg.children, child)
	return child
}

func (dg *DomainGroup) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group(dg.prefix, dg.middleware...)
	for _, ep := range dg.endpoints {
		group.Handle(ep.Method, ep.Path, ep.chain...)
	}
	for _, child := range dg.children {
		child.RegisterRoutes(group)
	}
}

// Routes lists the group's endpoints, then those of its subgroups, with
// paths relative to the parent group
func (dg *DomainGroup) Routes() []Route {
	out := make([]Route, 0, len(dg.endpoints))
	for _, ep := range dg.endpoints {
		out = append(out, Route{Method: ep.Method, Path: under(dg.prefix, ep.Path)})
	}
	for _, child := range dg.children {
		for _, r := range child.Routes() {
			out = append(out, Route{Method: r.Method, Path: under(dg.prefix, r.Path)})
		}
	}
	return out
}

func under(prefix, p string) string {
	if p == "" {
		return prefix
	}
	return path.Join(prefix, p)
}
