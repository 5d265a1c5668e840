package server

// Server groups the HTTP handlers of every resource. The dashboard is the only
// one for now.
type Server struct {
	DashboardServer
}

func NewServer(
	dashboardServer DashboardServer,
) Server {
	return Server{
		DashboardServer: dashboardServer,
	}
}
