package auditctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipal(t *testing.T) {
	ctx := WithPrincipal(context.Background(), "user@example.com")
	assert.Equal(t, "user@example.com", Principal(ctx))
}

func TestPrincipalDefaultsToAnonymous(t *testing.T) {
	assert.Equal(t, "anonymousUser", Principal(context.Background()))

	ctx := WithPrincipal(context.Background(), "")
	assert.Equal(t, "anonymousUser", Principal(ctx))
}
