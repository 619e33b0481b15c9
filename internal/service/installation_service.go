package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitit/internal/models"
)

// RegisterInstallation creates an installation identity and returns a token
// for it. This is the only procedure callable without a token.
func (s *SplitService) RegisterInstallation(ctx context.Context, req *connect.Request[RegisterInstallationRequest]) (*connect.Response[RegisterInstallationResponse], error) {
	installation := &models.Installation{}
	if err := s.store.CreateInstallation(ctx, installation); err != nil {
		slog.Error("RegisterInstallation failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.jwtManager.Generate(installation)
	if err != nil {
		slog.Error("Failed to generate token", "installation_id", installation.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Installation registered", "installation_id", installation.ID)
	return connect.NewResponse(&RegisterInstallationResponse{
		InstallationID: installation.ID,
		Token:          token,
	}), nil
}
