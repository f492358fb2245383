package main

import "github.com/JaimeStill/loyalty-lab/pkg/middleware"

// buildMiddleware creates the process-wide stack. Request logging and CORS
// are applied per module.
func buildMiddleware() middleware.System {
	sys := middleware.New()
	sys.Use(middleware.TrimSlash())
	return sys
}
