package service

import (
	"context"
	"encoding/json"
	"time"

	"salon-scheduler/internal/domain/entity"
	"salon-scheduler/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key holding the serialized client directory
	clientDirectoryKey = "clients:directory"

	// Timeout for individual Redis operations
	clientCacheTimeout = 5 * time.Second
)

// ClientCacheService keeps a short-lived copy of the client directory in
// Redis so wizard searches do not hit the backend on every keystroke.
// Cache failures are never fatal: every miss falls through to the backend.
type ClientCacheService struct {
	clientRepository repository.ClientRepository
	redisClient      *redis.Client
	log              *logrus.Logger
	ttl              time.Duration
}

func NewClientCacheService(clientRepository repository.ClientRepository, redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *ClientCacheService {
	return &ClientCacheService{
		clientRepository: clientRepository,
		redisClient:      redisClient,
		log:              log,
		ttl:              ttl,
	}
}

// GetClients returns the client directory, from Redis when fresh and from the
// backend otherwise.
func (s *ClientCacheService) GetClients(ctx context.Context) ([]entity.Client, error) {
	if cached, ok := s.readCache(ctx); ok {
		return cached, nil
	}

	clients, err := s.clientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	s.writeCache(ctx, clients)
	return clients, nil
}

// Invalidate drops the cached directory. Called after a booking creates a new
// client record so the next search sees it.
func (s *ClientCacheService) Invalidate(ctx context.Context) {
	opCtx, cancel := context.WithTimeout(ctx, clientCacheTimeout)
	defer cancel()

	if err := s.redisClient.Del(opCtx, clientDirectoryKey).Err(); err != nil {
		s.log.Warnf("Failed to invalidate client cache: %+v", err)
	}
}

func (s *ClientCacheService) readCache(ctx context.Context) ([]entity.Client, bool) {
	opCtx, cancel := context.WithTimeout(ctx, clientCacheTimeout)
	defer cancel()

	raw, err := s.redisClient.Get(opCtx, clientDirectoryKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Failed to read client cache: %+v", err)
		}
		return nil, false
	}

	var clients []entity.Client
	if err := json.Unmarshal(raw, &clients); err != nil {
		s.log.Warnf("Failed to decode client cache, dropping it: %+v", err)
		s.Invalidate(ctx)
		return nil, false
	}
	return clients, true
}

func (s *ClientCacheService) writeCache(ctx context.Context, clients []entity.Client) {
	raw, err := json.Marshal(clients)
	if err != nil {
		s.log.Warnf("Failed to encode client cache: %+v", err)
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, clientCacheTimeout)
	defer cancel()

	if err := s.redisClient.Set(opCtx, clientDirectoryKey, raw, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to write client cache: %+v", err)
	}
}
