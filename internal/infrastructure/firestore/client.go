package firestore

import (
	"context"
	"fmt"

	cf "cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/huluca/repairshop-backend/pkg/config"
)

// NewClient creates the Firestore client for the configured project. When a
// credentials file is set it is used explicitly; otherwise ambient credentials
// (metadata server, GOOGLE_APPLICATION_CREDENTIALS) apply.
func NewClient(ctx context.Context, cfg config.FirebaseConfig) (*cf.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := cf.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return client, nil
}
