// Package classroom is a self-contained in-memory users CRUD API. It shares
// nothing with the expense tracker; state lives only for the process
// lifetime.
package classroom

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"
)

// User is a classroom user record
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Server holds the in-memory user list behind a mutex
type Server struct {
	mu     sync.Mutex
	users  []*User
	nextID int
}

// NewServer creates a Server with an empty user list
func NewServer() *Server {
	return &Server{nextID: 1}
}

// Register attaches the classroom routes to an Echo instance
func (s *Server) Register(e *echo.Echo) {
	e.GET("/welcome", s.Welcome)
	e.GET("/users", s.ListUsers)
	e.POST("/users", s.CreateUser)
	e.PUT("/users/:id", s.UpdateUser)
	e.DELETE("/users/:id", s.DeleteUser)
}

// Welcome handles GET /welcome
func (s *Server) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to Express!"})
}

// ListUsers handles GET /users
func (s *Server) ListUsers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy so the response is an array even when empty
	users := make([]*User, len(s.users))
	copy(users, s.users)
	return c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /users
func (s *Server) CreateUser(c echo.Context) error {
	var req User
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name and email are required"})
	}
	if req.Name == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name and email are required"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := &User{ID: s.nextID, Name: req.Name, Email: req.Email}
	s.nextID++
	s.users = append(s.users, user)

	return c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /users/:id. Empty fields keep their current value.
func (s *Server) UpdateUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}

	var req User
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			if req.Name != "" {
				user.Name = req.Name
			}
			if req.Email != "" {
				user.Email = req.Email
			}
			return c.JSON(http.StatusOK, user)
		}
	}

	return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
}

// DeleteUser handles DELETE /users/:id
func (s *Server) DeleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, user := range s.users {
		if user.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return c.NoContent(http.StatusNoContent)
		}
	}

	return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
}
