package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "op only",
			err:  New("send", CodeInternal, cause),
			want: "upload.send: boom",
		},
		{
			name: "with path",
			err:  New("open", CodeNotFound, cause).WithPath("Id.jpg"),
			want: "upload.open Id.jpg: boom",
		},
		{
			name: "with url",
			err:  New("send", CodeNetwork, cause).WithURL("http://x/"),
			want: "upload.send http://x/: boom",
		},
		{
			name: "with path and url",
			err:  New("send", CodeNetwork, cause).WithPath("Id.jpg").WithURL("http://x/"),
			want: "upload.send Id.jpg -> http://x/: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestConstructorsWrapSentinels(t *testing.T) {
	notFound := NotFound("open", "Id.jpg", fs.ErrNotExist)
	assert.ErrorIs(t, notFound, ErrFileNotFound)
	assert.ErrorIs(t, notFound, fs.ErrNotExist)
	assert.Equal(t, CodeNotFound, notFound.Code)

	network := Network("send", "http://x/", errors.New("connection refused"))
	assert.ErrorIs(t, network, ErrNetwork)
	assert.NotErrorIs(t, network, ErrFileNotFound)

	timeout := Timeout("send", "http://x/", nil)
	assert.ErrorIs(t, timeout, ErrNetwork)
	assert.Equal(t, CodeTimeout, timeout.Code)

	invalid := InvalidInput("validate", "empty url")
	assert.ErrorIs(t, invalid, ErrInvalidInput)
	assert.Contains(t, invalid.Error(), "empty url")
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Network("send", "http://x/", nil))
	assert.Equal(t, CodeNetwork, CodeOf(wrapped))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
	assert.Equal(t, CodeInternal, CodeOf(nil))
}
