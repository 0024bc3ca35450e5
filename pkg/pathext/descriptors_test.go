package pathext

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pcj/pathext/pkg/testutil"
)

func TestExpandDescriptors(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, dir, "segments/classes2.zip", "x")
	testutil.MustWriteFile(t, dir, "segments/classes3.zip", "x")
	testutil.MustWriteFile(t, dir, "segments/extra/classes4.zip", "x")
	testutil.MustWriteFile(t, dir, "segments/readme.txt", "x")

	for name, tc := range map[string]struct {
		patterns []string
		want     []string
		wantErr  bool
	}{
		"degenerate": {},
		"literal paths pass through unchanged": {
			patterns: []string{filepath.Join(dir, "no/such/file.zip")},
			want:     []string{filepath.Join(dir, "no/such/file.zip")},
		},
		"star": {
			patterns: []string{filepath.Join(dir, "segments/*.zip")},
			want: []string{
				filepath.Join(dir, "segments/classes2.zip"),
				filepath.Join(dir, "segments/classes3.zip"),
			},
		},
		"doublestar": {
			patterns: []string{filepath.Join(dir, "segments/**/*.zip")},
			want: []string{
				filepath.Join(dir, "segments/classes2.zip"),
				filepath.Join(dir, "segments/classes3.zip"),
				filepath.Join(dir, "segments/extra/classes4.zip"),
			},
		},
		"mixed": {
			patterns: []string{
				filepath.Join(dir, "segments/readme.txt"),
				filepath.Join(dir, "segments/*.zip"),
			},
			want: []string{
				filepath.Join(dir, "segments/readme.txt"),
				filepath.Join(dir, "segments/classes2.zip"),
				filepath.Join(dir, "segments/classes3.zip"),
			},
		},
		"bad pattern": {
			patterns: []string{"segments/[.zip"},
			wantErr:  true,
		},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := ExpandDescriptors(tc.patterns)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
