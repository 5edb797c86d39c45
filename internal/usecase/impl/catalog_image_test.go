package impl

import (
	"context"
	"testing"

	domainerrors "healthtrack/internal/domain/errors"
	mockSvc "healthtrack/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCleanMediaKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{key: "meals/a/b.png", want: "meals/a/b.png", wantOK: true},
		{key: "/meals/a/b.png", want: "meals/a/b.png", wantOK: true},
		{key: "../../etc/passwd", want: "etc/passwd", wantOK: true},
		{key: "meals/../exercises/x.jpg", want: "exercises/x.jpg", wantOK: true},
		{key: "", wantOK: false},
		{key: "..", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			got, ok := cleanMediaKey(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMediaService_OpenImage_RejectsEmptyKey(t *testing.T) {
	service := NewMediaService(mockSvc.NewMockImageStore(t), newDiscardLogger())

	_, _, err := service.OpenImage(context.Background(), "/")

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
