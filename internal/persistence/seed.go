package persistence

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/repository"
)

type seedAccount struct {
	id       string
	username string
	password string
	role     domain.Role
}

var demoAccounts = []seedAccount{
	{id: "user1-id", username: "user1", password: "pass123", role: domain.RoleUser},
	{id: "user2-id", username: "john", password: "pass123", role: domain.RoleUser},
	{id: "agent1-id", username: "agent1", password: "agentpass", role: domain.RoleAgent},
	{id: "agent2-id", username: "agent2", password: "agentpass", role: domain.RoleAgent},
}

// SeedDemoAccounts populates the account store with the demo users and
// agents. A store that already holds accounts is left untouched.
func SeedDemoAccounts(ctx context.Context, users repository.UserRepository, bcryptCost int, logger *zap.Logger) error {
	count, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		logger.Debug("account store not empty; skipping demo seed", zap.Int("accounts", count))
		return nil
	}

	for _, account := range demoAccounts {
		hash, err := auth.HashPassword(account.password, bcryptCost)
		if err != nil {
			return fmt.Errorf("hash seed password for %s: %w", account.username, err)
		}
		user := domain.User{
			ID:           account.id,
			Username:     account.username,
			PasswordHash: hash,
			Role:         account.role,
		}
		if err := users.Put(ctx, user); err != nil {
			return fmt.Errorf("seed account %s: %w", account.username, err)
		}
	}

	logger.Info("demo accounts seeded", zap.Int("count", len(demoAccounts)))
	return nil
}
