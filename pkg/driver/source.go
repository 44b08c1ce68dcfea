package driver

import (
	"context"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/pkg/errors"
)

// gitSourcePrefix marks a script location hosted in a git repository:
//
//	git+<url>//<path>[@<revision>]
const gitSourcePrefix = "git+"

// Source is a script ready to be run line by line.
type Source struct {
	Name string
	Text string
}

// GitSource identifies a file inside a git repository.
type GitSource struct {
	URL      string
	Path     string
	Revision string
}

// ParseGitSource splits a git+ location. It reports false for anything
// without the git+ prefix.
func ParseGitSource(location string) (*GitSource, bool, error) {
	if !strings.HasPrefix(location, gitSourcePrefix) {
		return nil, false, nil
	}
	rest := strings.TrimPrefix(location, gitSourcePrefix)
	searchFrom := 0
	if idx := strings.Index(rest, "://"); idx >= 0 {
		searchFrom = idx + len("://")
	}
	sep := strings.Index(rest[searchFrom:], "//")
	if sep < 0 {
		return nil, true, errors.Errorf("git source %q: missing //<path> after the repository URL", location)
	}
	sep += searchFrom
	src := &GitSource{URL: rest[:sep], Path: rest[sep+2:], Revision: "HEAD"}
	if at := strings.LastIndex(src.Path, "@"); at >= 0 {
		src.Revision = src.Path[at+1:]
		src.Path = src.Path[:at]
	}
	if src.URL == "" || src.Path == "" || src.Revision == "" {
		return nil, true, errors.Errorf("git source %q: expected git+<url>//<path>[@<revision>]", location)
	}
	return src, true, nil
}

func (g *GitSource) String() string {
	return gitSourcePrefix + g.URL + "//" + g.Path + "@" + g.Revision
}

// LoadSource reads a script from a local path or a git+ location.
func LoadSource(ctx context.Context, location string) (*Source, error) {
	gitSrc, isGit, err := ParseGitSource(location)
	if err != nil {
		return nil, err
	}
	if isGit {
		return FetchGitSource(ctx, gitSrc)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, errors.Wrap(err, "read source")
	}
	return &Source{Name: location, Text: string(data)}, nil
}

// FetchGitSource clones the repository into memory, checks out the
// revision and reads the file.
func FetchGitSource(ctx context.Context, src *GitSource) (*Source, error) {
	log.Infof("fetching %s", src)
	fs := memfs.New()
	repo, err := git.CloneContext(ctx, memory.NewStorage(), fs, &git.CloneOptions{
		URL: src.URL,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "git clone %s", src.URL)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(src.Revision))
	if err != nil {
		remoteHash, remoteErr := repo.ResolveRevision(plumbing.Revision("origin/" + src.Revision))
		if remoteErr != nil {
			return nil, errors.Wrapf(err, "resolve revision %s", src.Revision)
		}
		hash = remoteHash
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, errors.Wrap(err, "git worktree")
	}
	if err := worktree.Checkout(&git.CheckoutOptions{Hash: *hash, Force: true}); err != nil {
		return nil, errors.Wrapf(err, "git checkout %s", src.Revision)
	}

	data, err := util.ReadFile(fs, src.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s at %s", src.Path, hash)
	}
	log.LogVf("fetched %s (%d bytes) at %s", src.Path, len(data), hash)
	return &Source{Name: src.String(), Text: string(data)}, nil
}
