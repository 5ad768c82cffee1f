package api

import (
	"github.com/nmoreira/puzzleday/internal/services"
)

// Server bundles the services the HTTP handlers depend on.
type Server struct {
	PuzzleService services.PuzzleService
	AuthService   services.AuthService
}
