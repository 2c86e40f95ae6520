package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ksolovey/notes-api/internal/model"
)

func (s *Server) signUpHandler(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body."})
		return
	}
	if verr := req.validate(); verr != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: verr.Error()})
		return
	}

	user, err := s.auth.SignUp(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrNameTaken) {
			c.JSON(http.StatusBadRequest, messageResponse{Message: "Name already taken."})
			return
		}
		log.Printf("failed to sign up user '%s': %v", req.Name, err)
		c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("New user with name %s has been registered!", user.Name),
		"user":    toUserResponse(user),
	})
}

func (s *Server) loginHandler(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body."})
		return
	}
	if verr := req.validate(); verr != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: verr.Error()})
		return
	}

	signed, user, err := s.auth.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid credentials."})
			return
		}
		log.Printf("failed to log in user '%s': %v", req.Name, err)
		c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome %s!", user.Name),
		"token":   signed,
	})
}

func (s *Server) listNotesHandler(c *gin.Context) {
	identity := identityFromContext(c)

	owned, err := s.notes.List(c.Request.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
			return
		}
		log.Printf("failed to list notes for user '%s': %v", identity.UserID, err)
		c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toNoteResponses(owned))
}

func (s *Server) createNoteHandler(c *gin.Context) {
	identity := identityFromContext(c)

	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body."})
		return
	}
	if verr := req.validate(); verr != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: verr.Error()})
		return
	}

	user, err := s.notes.Create(c.Request.Context(), identity.UserID, req.Title, req.Text)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
			return
		}
		log.Printf("failed to create note for user '%s': %v", identity.UserID, err)
		c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("The note: %s has been created and saved!", req.Title),
		"user":    toUserResponse(user),
	})
}

func (s *Server) updateNoteHandler(c *gin.Context) {
	identity := identityFromContext(c)

	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body."})
		return
	}
	if verr := req.validate(); verr != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: verr.Error()})
		return
	}

	note, err := s.notes.Update(c.Request.Context(), identity.UserID, model.NoteID(req.NoteID), req.Title, req.Text)
	if err != nil {
		if errors.Is(err, model.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, messageResponse{Message: "Note not found or does not belong to you."})
			return
		}
		log.Printf("failed to update note '%s' for user '%s': %v", req.NoteID, identity.UserID, err)
		c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Note %q has been updated.", note.Title),
		"note":    toNoteResponse(*note),
	})
}

func (s *Server) deleteNoteHandler(c *gin.Context) {
	identity := identityFromContext(c)

	var req deleteNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body."})
		return
	}
	if verr := req.validate(); verr != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: verr.Error()})
		return
	}

	note, err := s.notes.Delete(c.Request.Context(), identity.UserID, model.NoteID(req.NoteID))
	if err != nil {
		if errors.Is(err, model.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, messageResponse{Message: "Note not found."})
			return
		}
		log.Printf("failed to delete note '%s' for user '%s': %v", req.NoteID, identity.UserID, err)
		c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("The note: %s has been deleted.", note.Title)})
}

func (s *Server) searchNoteHandler(c *gin.Context) {
	identity := identityFromContext(c)

	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Title is required in the query string."})
		return
	}

	note, err := s.notes.SearchByTitle(c.Request.Context(), identity.UserID, title)
	if err != nil {
		if errors.Is(err, model.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, messageResponse{Message: "Note with that title not found."})
			return
		}
		log.Printf("failed to search note by title for user '%s': %v", identity.UserID, err)
		c.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toNoteResponse(*note))
}
