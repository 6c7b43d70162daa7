package handlers

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"eggbreak/internal/auth"
	"eggbreak/internal/config"
	"eggbreak/internal/game"
	"eggbreak/internal/models"
)

type Server struct {
	Cfg       config.Config
	Store     *game.Store
	Redis     *redis.Client
	Hub       *Hub
	JWTSecret []byte
}

func NewServer(cfg config.Config, store *game.Store, redisClient *redis.Client) *Server {
	srv := &Server{
		Cfg:       cfg,
		Store:     store,
		Redis:     redisClient,
		Hub:       NewHub(),
		JWTSecret: []byte(cfg.JWTSecret),
	}
	if cfg.DefaultDomain != "" {
		if _, err := store.CreateLink(models.CreateLinkRequest{
			Domain:    cfg.DefaultDomain,
			Subdomain: cfg.DefaultSubdomain,
			Protocol:  cfg.DefaultProtocol,
		}); err != nil {
			log.Printf("demo link error: %v", err)
		}
	}
	return srv
}

func (s *Server) SignAdminToken(username string) (string, error) {
	sessionID := newSessionID()
	if err := s.saveSession(sessionID, 8*time.Hour); err != nil {
		return "", err
	}
	return auth.GenerateToken(s.JWTSecret, username, true, sessionID, 8*time.Hour)
}

func (s *Server) saveSession(sessionID string, ttl time.Duration) error {
	if s.Redis == nil {
		return nil
	}
	return s.Redis.Set(context.Background(), sessionKey(), sessionID, ttl).Err()
}

func (s *Server) validateSession(sessionID string) error {
	if s.Redis == nil {
		return nil
	}
	val, err := s.Redis.Get(context.Background(), sessionKey()).Result()
	if err != nil {
		if err == redis.Nil {
			return errInvalidSession
		}
		return err
	}
	if val != sessionID {
		return errInvalidSession
	}
	return nil
}
