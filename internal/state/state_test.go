package state

import (
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasabi0522/repostatus/testutil"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		dirs  []string
		want  string
	}{
		{name: "normal", files: []string{"config", "index"}, dirs: []string{"refs"}, want: ""},
		{name: "merge", files: []string{"HEAD", "MERGE_HEAD"}, want: "M"},
		{name: "rebase merge dir", dirs: []string{"rebase-merge"}, want: "R"},
		{name: "rebase apply dir", dirs: []string{"rebase-apply"}, want: "R"},
		{name: "both rebase markers deduplicated", dirs: []string{"rebase-merge", "rebase-apply"}, want: "R"},
		{name: "cherry-pick", files: []string{"CHERRY_PICK_HEAD"}, want: "C"},
		{name: "bisect", files: []string{"BISECT_LOG"}, want: "B"},
		{name: "revert", files: []string{"REVERT_HEAD"}, want: "V"},
		{name: "rebase and merge sorted", files: []string{"MERGE_HEAD"}, dirs: []string{"rebase-merge"}, want: "MR"},
		{
			name:  "everything",
			files: []string{"REVERT_HEAD", "MERGE_HEAD", "BISECT_LOG", "CHERRY_PICK_HEAD"},
			dirs:  []string{"rebase-apply"},
			want:  "BCMRV",
		},
		{name: "case sensitive", files: []string{"merge_head"}, want: ""},
		{name: "nested markers ignored", dirs: []string{"refs/MERGE_HEAD"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := memfs.New()
			for _, name := range append([]string{"HEAD"}, tt.files...) {
				f, err := fs.Create(name)
				require.NoError(t, err)
				require.NoError(t, f.Close())
			}
			for _, name := range tt.dirs {
				require.NoError(t, fs.MkdirAll(name, 0755))
			}

			got, err := Detect(fs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectMissingDirectory(t *testing.T) {
	_, err := Detect(osfs.New("/nonexistent-control-dir-xyz"))
	assert.Error(t, err)
}

func TestDetectRealMerge(t *testing.T) {
	dir := testutil.NewRepo(t).WithFile("f.txt", "base\n").WithBranch("other").Build()
	testutil.WriteFile(t, dir, "f.txt", "main\n")
	testutil.Commit(t, dir, "main change")
	testutil.Git(t, dir, "checkout", "--quiet", "other")
	testutil.WriteFile(t, dir, "f.txt", "other\n")
	testutil.Commit(t, dir, "other change")

	// The conflicting merge exits non-zero and leaves the repository mid-merge.
	assert.Error(t, testutil.TryGit(dir, "merge", "main"))

	got, err := Detect(osfs.New(filepath.Join(dir, ".git")))
	require.NoError(t, err)
	assert.Equal(t, "M", got)
}
