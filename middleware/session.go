package middleware

import (
	"fmt"
	"time"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DefaultMaxActiveSessions caps concurrent sessions per user. Logging in
// past the cap evicts the least recently active session instead of failing.
const DefaultMaxActiveSessions = 5

// CreateSession records a new login session with device info parsed from the
// request's User-Agent.
func CreateSession(c *gin.Context, userID string, sessionRepo *repository.SessionRepo) (*model.Session, error) {
	maxSessions := utils.GetEnvAsInt("MAX_ACTIVE_SESSIONS", DefaultMaxActiveSessions)

	count, err := sessionRepo.CountActiveSessions(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active sessions: %w", err)
	}
	if count >= maxSessions {
		if err := sessionRepo.EndLeastActiveSession(userID); err != nil {
			return nil, fmt.Errorf("failed to evict oldest session: %w", err)
		}
		count--
	}

	userAgent := c.Request.UserAgent()
	browser, os, device := utils.ParseUserAgent(userAgent)

	session := &model.Session{
		SessionID:      uuid.New().String(),
		UserID:         userID,
		DisplayName:    utils.GenerateSessionName(userAgent),
		DeviceInfo:     fmt.Sprintf("%s on %s (%s)", browser, os, device),
		IPAddress:      c.ClientIP(),
		CreatedAt:      time.Now(),
		ExpiresAt:      time.Now().Add(24 * time.Hour),
		LastActivityAt: time.Now(),
		IsActive:       true,
	}

	if err := sessionRepo.CreateSession(session); err != nil {
		return nil, err
	}

	utils.UpdateActiveSessions(float64(count + 1))
	return session, nil
}
