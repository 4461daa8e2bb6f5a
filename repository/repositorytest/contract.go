// Package repositorytest holds the behaviour every repository backend must
// share, run by each backend's own tests against a real database.
package repositorytest

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/taskboard/domain"
	"github.com/fastygo/taskboard/repository"
)

// Factory returns repositories over an empty, migrated database.
type Factory func(t *testing.T) (repository.UserRepository, repository.TaskRepository)

var seq atomic.Int64

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, seq.Add(1))
}

func strPtr(s string) *string { return &s }

// Run exercises the user and task repository contract.
func Run(t *testing.T, newRepos Factory) {
	t.Run("CreateAndGetUser", func(t *testing.T) {
		users, _ := newRepos(t)
		ctx := context.Background()

		created, err := users.Create(ctx, "Alice", "alice@x.com")
		require.NoError(t, err)
		assert.Positive(t, created.ID)
		assert.Equal(t, "Alice", created.Name)
		assert.Equal(t, "alice@x.com", created.Email)

		fetched, err := users.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, fetched)
	})

	t.Run("DuplicateEmailIsConflict", func(t *testing.T) {
		users, _ := newRepos(t)
		ctx := context.Background()
		email := uniqueEmail("dup")

		original, err := users.Create(ctx, "First", email)
		require.NoError(t, err)

		_, err = users.Create(ctx, "Second", email)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))

		fetched, err := users.GetByID(ctx, original.ID)
		require.NoError(t, err)
		assert.Equal(t, "First", fetched.Name)

		all, err := users.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("MissingUser", func(t *testing.T) {
		users, _ := newRepos(t)
		ctx := context.Background()

		_, err := users.GetByID(ctx, 99999)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		deleted, err := users.Delete(ctx, 99999)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("ListUsers", func(t *testing.T) {
		users, _ := newRepos(t)
		ctx := context.Background()

		empty, err := users.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)

		for i := 0; i < 3; i++ {
			_, err := users.Create(ctx, fmt.Sprintf("user-%d", i), uniqueEmail("list"))
			require.NoError(t, err)
		}

		all, err := users.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("CreateTaskForMissingUser", func(t *testing.T) {
		_, tasks := newRepos(t)
		ctx := context.Background()

		_, err := tasks.Create(ctx, repository.NewTask{Title: "orphan", UserID: 424242})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrReferencedUserMissing)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))

		listed, err := tasks.ListByUserID(ctx, 424242)
		require.NoError(t, err)
		assert.Empty(t, listed)
	})

	t.Run("TaskLifecycle", func(t *testing.T) {
		users, tasks := newRepos(t)
		ctx := context.Background()

		owner, err := users.Create(ctx, "Owner", uniqueEmail("owner"))
		require.NoError(t, err)

		t1, err := tasks.Create(ctx, repository.NewTask{Title: "T1", UserID: owner.ID})
		require.NoError(t, err)
		t2, err := tasks.Create(ctx, repository.NewTask{Title: "T2", Description: strPtr("second"), UserID: owner.ID})
		require.NoError(t, err)
		t3, err := tasks.Create(ctx, repository.NewTask{Title: "T3", UserID: owner.ID})
		require.NoError(t, err)

		assert.Nil(t, t1.Description)
		require.NotNil(t, t2.Description)
		assert.Equal(t, "second", *t2.Description)

		listed, err := tasks.ListByUserID(ctx, owner.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{t1.ID, t2.ID, t3.ID}, taskIDs(listed))
		for _, task := range listed {
			assert.False(t, task.IsCompleted, "task %d", task.ID)
			assert.Equal(t, owner.ID, task.UserID)
		}

		updated, err := tasks.UpdateStatus(ctx, t2.ID, true)
		require.NoError(t, err)
		assert.True(t, updated)

		listed, err = tasks.ListByUserID(ctx, owner.ID)
		require.NoError(t, err)
		for _, task := range listed {
			assert.Equal(t, task.ID == t2.ID, task.IsCompleted, "task %d", task.ID)
		}

		fetched, err := tasks.GetByID(ctx, t2.ID)
		require.NoError(t, err)
		assert.True(t, fetched.IsCompleted)

		deleted, err := tasks.Delete(ctx, t1.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		listed, err = tasks.ListByUserID(ctx, owner.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{t2.ID, t3.ID}, taskIDs(listed))

		_, err = tasks.GetByID(ctx, t1.ID)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("MissingTask", func(t *testing.T) {
		_, tasks := newRepos(t)
		ctx := context.Background()

		updated, err := tasks.UpdateStatus(ctx, 99999, true)
		require.NoError(t, err)
		assert.False(t, updated)

		deleted, err := tasks.Delete(ctx, 99999)
		require.NoError(t, err)
		assert.False(t, deleted)

		_, err = tasks.GetByID(ctx, 99999)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("LargestIDIsAbsent", func(t *testing.T) {
		users, tasks := newRepos(t)
		ctx := context.Background()

		_, err := users.GetByID(ctx, math.MaxInt64)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		deleted, err := users.Delete(ctx, math.MaxInt64)
		require.NoError(t, err)
		assert.False(t, deleted)

		listed, err := tasks.ListByUserID(ctx, math.MaxInt64)
		require.NoError(t, err)
		assert.Empty(t, listed)

		_, err = tasks.Create(ctx, repository.NewTask{Title: "far away", UserID: math.MaxInt64})
		assert.ErrorIs(t, err, domain.ErrReferencedUserMissing)

		_, err = tasks.GetByID(ctx, math.MaxInt64)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)

		updated, err := tasks.UpdateStatus(ctx, math.MaxInt64, true)
		require.NoError(t, err)
		assert.False(t, updated)

		deleted, err = tasks.Delete(ctx, math.MaxInt64)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("DeleteUserCascadesToTasks", func(t *testing.T) {
		users, tasks := newRepos(t)
		ctx := context.Background()

		owner, err := users.Create(ctx, "Owner", uniqueEmail("cascade"))
		require.NoError(t, err)
		other, err := users.Create(ctx, "Other", uniqueEmail("cascade"))
		require.NoError(t, err)

		var ownedIDs []int64
		for i := 0; i < 4; i++ {
			task, err := tasks.Create(ctx, repository.NewTask{Title: fmt.Sprintf("task-%d", i), UserID: owner.ID})
			require.NoError(t, err)
			ownedIDs = append(ownedIDs, task.ID)
		}
		kept, err := tasks.Create(ctx, repository.NewTask{Title: "kept", UserID: other.ID})
		require.NoError(t, err)

		deleted, err := users.Delete(ctx, owner.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = users.GetByID(ctx, owner.ID)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		listed, err := tasks.ListByUserID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, listed)

		for _, id := range ownedIDs {
			_, err := tasks.GetByID(ctx, id)
			assert.ErrorIs(t, err, domain.ErrTaskNotFound)
		}

		remaining, err := tasks.ListByUserID(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{kept.ID}, taskIDs(remaining))
	})
}

func taskIDs(tasks []domain.Task) []int64 {
	ids := make([]int64, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}
