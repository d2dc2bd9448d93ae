package di

import (
	"lodge/transport/http"

	vipService "lodge/internal/domains/vip/service"
)

// App bundles the HTTP server with the long-running services main wires up.
type App struct {
	HTTP *http.HTTP
	VIP  vipService.VIP
}
