package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_Default(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := With(WithLogger(context.Background(), logger), "row", 7)
	FromContext(ctx).Info("Row done.")

	assert.Contains(t, buf.String(), "row=7")
	assert.Contains(t, buf.String(), "msg=\"Row done.\"")
}
