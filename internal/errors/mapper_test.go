package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	svcErr "github.com/oggyb/muzz-dating/internal/errors"
)

func TestMap(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"validation", fmt.Errorf("%w: openId is required", svcErr.ErrValidation), codes.InvalidArgument},
		{"unauthenticated", svcErr.ErrUnauthenticated, codes.Unauthenticated},
		{"store unavailable", fmt.Errorf("upsert: %w", svcErr.ErrStoreUnavailable), codes.Unavailable},
		{"not found", fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), codes.NotFound},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"canceled", context.Canceled, codes.Canceled},
		{"status passthrough", svcErr.PermissionDenied("nope"), codes.PermissionDenied},
		{"other", fmt.Errorf("boom"), codes.Internal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, status.Code(svcErr.Map(tc.err)))
		})
	}
}

func TestMapNil(t *testing.T) {
	assert.NoError(t, svcErr.Map(nil))
}

func TestMapKeepsValidationMessage(t *testing.T) {
	err := svcErr.Map(fmt.Errorf("%w: openId is required", svcErr.ErrValidation))
	assert.Contains(t, status.Convert(err).Message(), "openId is required")
}

func TestMapHidesInternalDetail(t *testing.T) {
	err := svcErr.Map(fmt.Errorf("failed to update profile: %w", fmt.Errorf("near \"UPDATE\": syntax error")))

	st := status.Convert(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal error", st.Message())
	assert.NotContains(t, st.Message(), "syntax error")
}
