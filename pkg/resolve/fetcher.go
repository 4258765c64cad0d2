package resolve

import (
	"context"
	"os"
)

// Fetcher is the external collaborator pkg/resolve contacts to obtain a
// manifest or lockfile's raw bytes. The default implementation reads from
// the local filesystem; an embedder running inside a sandboxed runtime can
// supply one backed by its own virtual filesystem instead.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// FileFetcher is the default Fetcher, backed by os.ReadFile.
type FileFetcher struct{}

// Fetch reads path from the local filesystem. ctx is not consulted since
// os.ReadFile has no cancellation hook; callers needing cancellation should
// race this against ctx.Done() themselves. RunScan does not check ctx
// between files either.
func (FileFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}
