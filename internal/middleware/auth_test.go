package middleware

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitit/internal/auth"
	"github.com/mmynk/splitit/internal/models"
)

type ping struct{}

// echoInstallation records the installation ID the handler sees.
func echoInstallation(seen *string) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		*seen = GetInstallationID(ctx)
		return connect.NewResponse(&ping{}), nil
	}
}

func TestRequireInstallation(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	token, err := jwtManager.Generate(&models.Installation{ID: "inst-1"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantID  string
		wantErr bool
	}{
		{name: "valid token", header: "Bearer " + token, wantID: "inst-1"},
		{name: "missing header", wantErr: true},
		{name: "wrong scheme", header: "Basic " + token, wantErr: true},
		{name: "garbage token", header: "Bearer nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := RequireInstallation(jwtManager)(echoInstallation(&seen))

			req := connect.NewRequest(&ping{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			_, err := handler(context.Background(), req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
				assert.Empty(t, seen)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, seen)
		})
	}
}

func TestGetInstallationID_Empty(t *testing.T) {
	assert.Empty(t, GetInstallationID(context.Background()))
	assert.Equal(t, "x", GetInstallationID(WithInstallationID(context.Background(), "x")))
}
