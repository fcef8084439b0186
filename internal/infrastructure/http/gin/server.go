package gin

import (
	"fmt"

	"github.com/gin-contrib/cors"
	ginlib "github.com/gin-gonic/gin"

	"kitchen_orders/internal/config"
)

type Server struct {
	engine *ginlib.Engine
	addr   string
}

// NewEngine builds the base engine with recovery and the permissive CORS
// policy the kitchen frontend relies on.
func NewEngine() *ginlib.Engine {
	r := ginlib.New()
	r.Use(ginlib.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
	}))
	return r
}

func NewServer(cfg config.ServerConfig, engine *ginlib.Engine) *Server {
	return &Server{
		engine: engine,
		addr:   cfg.Address(),
	}
}

func (s *Server) Run() error {
	if s.engine == nil {
		return fmt.Errorf("gin engine is nil")
	}
	return s.engine.Run(s.addr)
}
