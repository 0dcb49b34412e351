package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("loader")

var client = new(http.Client)

const cacheLifetime = 10 * time.Minute

// Repository retrieves policy source text by URL. The text is handed to the
// policy builder as-is; the repository does not parse it.
type Repository interface {
	Get(ctx context.Context, url string) (string, error)
	Invalidate(ctx context.Context, url string) error
}

type repository struct {
	rdb *redis.Client
}

// NewRepository creates a policy source repository backed by an HTTP fetch
// with a redis cache.
func NewRepository(rdb *redis.Client) Repository {
	return &repository{rdb}
}

func (r *repository) Get(ctx context.Context, url string) (string, error) {
	ctx, span := tracer.Start(ctx, "Loader.Repository.Get")
	defer span.End()

	// check cache
	key := fmt.Sprintf("policy:%s", url)
	val, err := r.rdb.Get(ctx, key).Result()
	if err == nil {
		return val, nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", errors.Wrap(err, "failed to create request")
	}

	resp, err := client.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", errors.Wrap(err, "failed to fetch policy source")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	source, err := io.ReadAll(resp.Body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", errors.Wrap(err, "failed to read policy source")
	}

	// cache policy source
	err = r.rdb.Set(ctx, key, source, cacheLifetime).Err()
	if err != nil {
		// cache failure is not fatal; the source was fetched fine
		span.RecordError(err)
		slog.Warn("failed to cache policy source", slog.String("url", url), slog.String("error", err.Error()))
	}

	return string(source), nil
}

// Invalidate drops the cached source for the given URL so the next Get
// fetches it again.
func (r *repository) Invalidate(ctx context.Context, url string) error {
	ctx, span := tracer.Start(ctx, "Loader.Repository.Invalidate")
	defer span.End()

	key := fmt.Sprintf("policy:%s", url)
	err := r.rdb.Del(ctx, key).Err()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return errors.Wrap(err, "failed to invalidate policy source")
	}

	return nil
}
