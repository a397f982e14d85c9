package writing

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	models "inkwell/internal/domain/models/writing"
	"inkwell/internal/domain/repositories"
)

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// passthroughTx runs the function directly, without a real transaction.
type passthroughTx struct{}

func (passthroughTx) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

// memContentRepo is an in-memory ContentRepository.
type memContentRepo struct {
	texts  map[string]string
	getErr map[string]error
}

func newMemContentRepo() *memContentRepo {
	return &memContentRepo{
		texts:  make(map[string]string),
		getErr: make(map[string]error),
	}
}

func (r *memContentRepo) Get(_ context.Context, nodeID string) (string, bool, error) {
	if err := r.getErr[nodeID]; err != nil {
		return "", false, err
	}
	text, exists := r.texts[nodeID]
	return text, exists, nil
}

func (r *memContentRepo) Upsert(_ context.Context, nodeID, text string) error {
	r.texts[nodeID] = text
	return nil
}

// memVersionRepo is an in-memory VersionRepository. Versions are kept
// in insertion order, newest last.
type memVersionRepo struct {
	versions  map[string][]models.Version
	insertErr error
}

func newMemVersionRepo() *memVersionRepo {
	return &memVersionRepo{versions: make(map[string][]models.Version)}
}

func (r *memVersionRepo) Insert(_ context.Context, version *models.Version) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.versions[version.NodeID] = append(r.versions[version.NodeID], *version)
	return nil
}

func (r *memVersionRepo) Prune(_ context.Context, nodeID string, keep int) error {
	vs := r.versions[nodeID]
	if len(vs) > keep {
		r.versions[nodeID] = vs[len(vs)-keep:]
	}
	return nil
}

func (r *memVersionRepo) List(_ context.Context, nodeID string) ([]models.VersionInfo, error) {
	vs := r.versions[nodeID]
	infos := make([]models.VersionInfo, 0, len(vs))
	for i := len(vs) - 1; i >= 0; i-- {
		infos = append(infos, models.VersionInfo{
			Label:     vs[i].Label,
			CreatedAt: vs[i].CreatedAt,
			Preview:   vs[i].Content,
		})
	}
	return infos, nil
}

func (r *memVersionRepo) Get(_ context.Context, nodeID, label string) (string, bool, error) {
	for _, v := range r.versions[nodeID] {
		if v.Label == label {
			return v.Content, true, nil
		}
	}
	return "", false, nil
}

func (r *memVersionRepo) LabelExists(ctx context.Context, nodeID, label string) (bool, error) {
	_, exists, err := r.Get(ctx, nodeID, label)
	return exists, err
}

var errStoreDown = errors.New("store unavailable")
