package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	md2play "github.com/alnah/go-md2play"
	"github.com/alnah/go-md2play/internal/fileutil"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "missing input file",
			err:  fmt.Errorf("%w: open: no such file", fileutil.ErrReadFile),
			want: ExitIO,
		},
		{
			name: "no input argument",
			err:  ErrNoInput,
			want: ExitIO,
		},
		{
			name: "os not-exist",
			err:  fmt.Errorf("loading: %w", os.ErrNotExist),
			want: ExitIO,
		},
		{
			name: "write failure",
			err:  fileutil.ErrWriteFile,
			want: ExitIO,
		},
		{
			name: "config not found",
			err:  fmt.Errorf("%w: demo.yaml", ErrConfigNotFound),
			want: ExitUsage,
		},
		{
			name: "config parse failure",
			err:  ErrConfigParse,
			want: ExitUsage,
		},
		{
			name: "unknown extension",
			err:  fileutil.ErrUnknownExtension,
			want: ExitUsage,
		},
		{
			name: "unknown preview style",
			err:  fmt.Errorf("%w: %q", md2play.ErrUnknownPreviewStyle, "nope"),
			want: ExitUsage,
		},
		{
			name: "unexpected error",
			err:  errors.New("boom"),
			want: ExitGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
