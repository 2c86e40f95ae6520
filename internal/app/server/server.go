package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ksolovey/notes-api/internal/service/auth"
	"github.com/ksolovey/notes-api/internal/service/notes"
	"github.com/ksolovey/notes-api/internal/service/token"
)

type Server struct {
	router *gin.Engine
	auth   auth.Service
	notes  notes.Service
	tokens token.Manager
}

func New(authServ auth.Service, notesServ notes.Service, tokens token.Manager) *Server {
	s := &Server{
		router: gin.New(),
		auth:   authServ,
		notes:  notesServ,
		tokens: tokens,
	}

	s.router.Use(gin.Recovery(), metricsMiddleware())
	s.routes()

	return s
}

func (s *Server) routes() {
	s.router.POST("/user/signup", s.signUpHandler)
	s.router.POST("/user/login", s.loginHandler)

	protected := s.router.Group("/notes", s.authGate())
	protected.GET("", s.listNotesHandler)
	protected.POST("", s.createNoteHandler)
	protected.PUT("", s.updateNoteHandler)
	protected.DELETE("", s.deleteNoteHandler)
	protected.GET("/search", s.searchNoteHandler)
}

func (s *Server) Run(port string) error {
	log.Printf("server running on :%s", port)
	return s.router.Run(":" + port)
}

// Handler exposes the router, used by httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}
