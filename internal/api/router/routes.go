// Package router wires HTTP routes onto the Fiber application.
//
// Middleware MUST be registered through RegisterRouteWithMiddleware. Passing
// middleware handlers directly in router.Get(path, middleware, handler) does
// not fire them in Fiber v3; attaching them to a group with .Use() does.
package router

import (
	"github.com/gofiber/fiber/v3"
)

// RoutePrefix holds the base API path prefixes.
type RoutePrefix struct {
	Base string // base prefix (/api)
	V1   string // version 1 prefix (/api/v1)
}

// NewRoutePrefix returns the default prefixes.
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// Router manages route registration for the API.
type Router struct {
	App    *fiber.App
	Prefix RoutePrefix
}

// NewRouter creates a Router for the app.
func NewRouter(app *fiber.App) *Router {
	return &Router{
		App:    app,
		Prefix: NewRoutePrefix(),
	}
}

// RegisterRouteWithMiddleware registers a route on a prefixed group with its
// middleware attached via .Use(). This is the only registration form whose
// middleware actually runs under Fiber v3.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "PATCH":
		routeGroup.Patch(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterFunc registers one feature's routes onto the v1 group.
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes runs every registration function against /api/v1.
func SetupRoutes(app *fiber.App, registrations ...RegisterFunc) error {
	r := NewRouter(app)
	v1 := app.Group(r.Prefix.V1)

	for _, register := range registrations {
		if err := register(v1, r); err != nil {
			return err
		}
	}

	return nil
}
