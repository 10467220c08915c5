package credentials

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

// Repository is the credential-store contract the auth core depends on.
// FindByUsername reports absence with common.ErrNotFound; any other non-nil
// error is an infrastructure failure. Create returns the record with its
// store-assigned UserID.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*models.Credential, error)
	Create(ctx context.Context, cred *models.Credential) (*models.Credential, error)
	SetCreatedBy(ctx context.Context, userID, createdBy int64) error
}
