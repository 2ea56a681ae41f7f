package service

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/artkov/lancer/lancer-backend/internal/testutil"
)

// fixedClock pins the notifier to a deterministic "today".
var fixedClock = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func newTestNotifier(projectRepo *testutil.MockProjectRepository, messenger domain.Messenger, retryOnFailure bool) *DeadlineNotifier {
	n := NewDeadlineNotifier(projectRepo, messenger, retryOnFailure)
	n.sendDelay = 0
	n.now = func() time.Time { return fixedClock }
	return n
}

func activeProject(name string, deadline time.Time) *domain.Project {
	return &domain.Project{
		Name:      name,
		Type:      "web",
		Cost:      decimal.NewFromInt(250),
		StartDate: deadline.AddDate(0, 0, -10),
		Deadline:  deadline,
	}
}

func TestDeadlineNotifier_Run_SendsForUpcomingDeadlines(t *testing.T) {
	projectRepo := testutil.NewMockProjectRepository()
	messenger := &testutil.MockMessenger{}
	notifier := newTestNotifier(projectRepo, messenger, false)

	projectRepo.AddProject(activeProject("Due today", fixedClock))
	projectRepo.AddProject(activeProject("Due tomorrow", fixedClock.AddDate(0, 0, 1)))
	projectRepo.AddProject(activeProject("Due in three", fixedClock.AddDate(0, 0, 3)))
	projectRepo.AddProject(activeProject("Due in four", fixedClock.AddDate(0, 0, 4)))
	projectRepo.AddProject(activeProject("Overdue", fixedClock.AddDate(0, 0, -1)))

	sent := notifier.Run()

	assert.Equal(t, 3, sent)
	messages := messenger.Sent()
	require.Len(t, messages, 3)

	joined := strings.Join(messages, "\n---\n")
	assert.Contains(t, joined, "Due today")
	assert.Contains(t, joined, "Due tomorrow")
	assert.Contains(t, joined, "Due in three")
	assert.NotContains(t, joined, "Due in four")
	assert.NotContains(t, joined, "Overdue")
}

func TestDeadlineNotifier_Run_MessageBuckets(t *testing.T) {
	projectRepo := testutil.NewMockProjectRepository()
	messenger := &testutil.MockMessenger{}
	notifier := newTestNotifier(projectRepo, messenger, false)

	projectRepo.AddProject(activeProject("Today project", fixedClock))
	projectRepo.AddProject(activeProject("Tomorrow project", fixedClock.AddDate(0, 0, 1)))
	projectRepo.AddProject(activeProject("Later project", fixedClock.AddDate(0, 0, 2)))

	notifier.Run()

	messages := messenger.Sent()
	require.Len(t, messages, 3)
	assert.Contains(t, messages[0], "Deadline today!")
	assert.Contains(t, messages[1], "Deadline tomorrow!")
	assert.Contains(t, messages[2], "2 days until deadline")
	assert.Contains(t, messages[2], "2025-06-12")
	assert.Contains(t, messages[0], "$250.00")
}

func TestDeadlineNotifier_Run_SkipsCompletedProjects(t *testing.T) {
	projectRepo := testutil.NewMockProjectRepository()
	messenger := &testutil.MockMessenger{}
	notifier := newTestNotifier(projectRepo, messenger, false)

	done := activeProject("Finished", fixedClock)
	done.Completed = true
	completion := fixedClock.AddDate(0, 0, -1)
	done.CompletionDate = &completion
	projectRepo.AddProject(done)

	sent := notifier.Run()

	assert.Equal(t, 0, sent)
	assert.Empty(t, messenger.Sent())
}

func TestDeadlineNotifier_Run_OncePerDay(t *testing.T) {
	projectRepo := testutil.NewMockProjectRepository()
	messenger := &testutil.MockMessenger{}
	notifier := newTestNotifier(projectRepo, messenger, false)

	projectRepo.AddProject(activeProject("Due today", fixedClock))

	first := notifier.Run()
	second := notifier.Run()

	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
	assert.Len(t, messenger.Sent(), 1)
}

func TestDeadlineNotifier_Run_NextDayRunsAgain(t *testing.T) {
	projectRepo := testutil.NewMockProjectRepository()
	messenger := &testutil.MockMessenger{}
	notifier := newTestNotifier(projectRepo, messenger, false)

	projectRepo.AddProject(activeProject("Due soon", fixedClock.AddDate(0, 0, 2)))

	assert.Equal(t, 1, notifier.Run())

	notifier.now = func() time.Time { return fixedClock.AddDate(0, 0, 1) }
	assert.Equal(t, 1, notifier.Run())
	assert.Len(t, messenger.Sent(), 2)
}

func TestDeadlineNotifier_Run_TotalFailureMarksDayWhenRetryDisabled(t *testing.T) {
	projectRepo := testutil.NewMockProjectRepository()
	messenger := &testutil.MockMessenger{FailFirst: 10}
	notifier := newTestNotifier(projectRepo, messenger, false)

	projectRepo.AddProject(activeProject("Due today", fixedClock))

	assert.Equal(t, 0, notifier.Run())
	// With retry disabled the day is marked even though nothing was
	// delivered.
	assert.Equal(t, 0, notifier.Run())
	assert.Empty(t, messenger.Sent())
}

func TestDeadlineNotifier_Run_TotalFailureRetries(t *testing.T) {
	projectRepo := testutil.NewMockProjectRepository()
	messenger := &testutil.MockMessenger{FailFirst: 1}
	notifier := newTestNotifier(projectRepo, messenger, true)

	projectRepo.AddProject(activeProject("Due today", fixedClock))

	assert.Equal(t, 0, notifier.Run())
	// First run failed entirely, the day stays open for retry.
	assert.Equal(t, 1, notifier.Run())
	// Now delivered, the guard closes the day.
	assert.Equal(t, 0, notifier.Run())
	assert.Len(t, messenger.Sent(), 1)
}

func TestDeadlineNotifier_Run_PartialFailureCountsDelivered(t *testing.T) {
	projectRepo := testutil.NewMockProjectRepository()
	messenger := &testutil.MockMessenger{FailFirst: 1}
	notifier := newTestNotifier(projectRepo, messenger, true)

	projectRepo.AddProject(activeProject("One", fixedClock))
	projectRepo.AddProject(activeProject("Two", fixedClock.AddDate(0, 0, 1)))

	sent := notifier.Run()

	assert.Equal(t, 1, sent)
	// At least one delivery succeeded, so the day is marked.
	assert.Equal(t, 0, notifier.Run())
}

func TestDeadlineNotifier_Run_NilMessengerIsNoop(t *testing.T) {
	projectRepo := testutil.NewMockProjectRepository()
	notifier := newTestNotifier(projectRepo, nil, false)

	projectRepo.AddProject(activeProject("Due today", fixedClock))

	assert.Equal(t, 0, notifier.Run())
}
