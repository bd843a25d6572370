package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hugohenrick/central-brain/internal/adapter/repository"
	"github.com/hugohenrick/central-brain/internal/domain/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repoFactory cria um repositório vazio e conectado
type repoFactory func(t *testing.T, opts ...repository.Option) chat.Repository

// fixedClock devolve os instantes na ordem informada e repete o último
type fixedClock struct {
	mu    sync.Mutex
	times []time.Time
}

func (c *fixedClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.times[0]
	if len(c.times) > 1 {
		c.times = c.times[1:]
	}
	return next
}

func runChatRepositoryContract(t *testing.T, newRepo repoFactory) {
	t.Run("append then list", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		entry, err := repo.Append(ctx, "hello", chat.OriginUser)
		require.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, "hello", entry.Text)
		assert.Equal(t, chat.OriginUser, entry.Origin)
		assert.False(t, entry.Timestamp.IsZero())

		entries, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, entry.ID, entries[0].ID)
		assert.Equal(t, "hello", entries[0].Text)
		assert.Equal(t, chat.OriginUser, entries[0].Origin)
		assert.True(t, entry.Timestamp.Equal(entries[0].Timestamp))
	})

	t.Run("empty log", func(t *testing.T) {
		entries, err := newRepo(t).ListAll(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("conversation", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		reply := "I understand your message: hello. How can I help you further?"
		_, err := repo.Append(ctx, "hello", chat.OriginUser)
		require.NoError(t, err)
		_, err = repo.Append(ctx, reply, chat.OriginResponder)
		require.NoError(t, err)

		entries, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "hello", entries[0].Text)
		assert.Equal(t, chat.OriginUser, entries[0].Origin)
		assert.Equal(t, reply, entries[1].Text)
		assert.Equal(t, chat.OriginResponder, entries[1].Origin)
	})

	t.Run("orders by timestamp", func(t *testing.T) {
		ctx := context.Background()
		base := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
		clock := &fixedClock{times: []time.Time{
			base.Add(2 * time.Second),
			base,
			base.Add(time.Second),
		}}
		repo := newRepo(t, repository.WithClock(clock.now))

		for _, text := range []string{"terceira", "primeira", "segunda"} {
			_, err := repo.Append(ctx, text, chat.OriginUser)
			require.NoError(t, err)
		}

		entries, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "primeira", entries[0].Text)
		assert.Equal(t, "segunda", entries[1].Text)
		assert.Equal(t, "terceira", entries[2].Text)
	})

	t.Run("ties keep insertion order", func(t *testing.T) {
		ctx := context.Background()
		same := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
		repo := newRepo(t, repository.WithClock(func() time.Time { return same }))

		for i := 0; i < 5; i++ {
			_, err := repo.Append(ctx, fmt.Sprintf("msg-%d", i), chat.OriginUser)
			require.NoError(t, err)
		}

		entries, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 5)
		for i, entry := range entries {
			assert.Equal(t, fmt.Sprintf("msg-%d", i), entry.Text)
		}
	})

	t.Run("concurrent appends", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		const n = 40
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				origin := chat.OriginUser
				if i%2 == 1 {
					origin = chat.OriginResponder
				}
				if _, err := repo.Append(ctx, fmt.Sprintf("concorrente-%d", i), origin); err != nil {
					errs <- err
				}
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		entries, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, entries, n)

		ids := make(map[string]struct{}, n)
		texts := make(map[string]struct{}, n)
		for i, entry := range entries {
			ids[entry.ID] = struct{}{}
			texts[entry.Text] = struct{}{}
			if i > 0 {
				assert.False(t, entry.Timestamp.Before(entries[i-1].Timestamp), "timestamps fora de ordem")
			}
		}
		assert.Len(t, ids, n)
		assert.Len(t, texts, n)
	})

	t.Run("rejects invalid origin", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		_, err := repo.Append(ctx, "x", chat.Origin("system"))
		assert.ErrorIs(t, err, chat.ErrInvalidOrigin)

		entries, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

// assertStoreUnavailable verifica que um repositório desconectado falha sem gravar
func assertStoreUnavailable(t *testing.T, repo chat.Repository) {
	t.Helper()
	ctx := context.Background()

	_, err := repo.Append(ctx, "hello", chat.OriginUser)
	assert.ErrorIs(t, err, chat.ErrStoreUnavailable)

	_, err = repo.ListAll(ctx)
	assert.ErrorIs(t, err, chat.ErrStoreUnavailable)
}
