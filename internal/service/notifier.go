package service

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/artkov/lancer/lancer-backend/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultSendDelay spaces consecutive deliveries to respect the messaging
// provider's rate limits.
const DefaultSendDelay = time.Second

// DeadlineNotifier scans active projects and delivers at most one reminder
// per project per qualifying day. State is process-local: the day guard
// resets on restart.
type DeadlineNotifier struct {
	projectRepo    domain.ProjectRepository
	messenger      domain.Messenger
	retryOnFailure bool

	sendDelay time.Duration
	now       func() time.Time

	inFlight atomic.Bool

	mu           sync.Mutex
	lastNotified time.Time
}

// NewDeadlineNotifier creates a notifier. A nil messenger disables delivery:
// runs become no-ops. retryOnFailure controls whether a run in which every
// delivery failed leaves the day unmarked so a later run may retry; false
// marks the day even when nothing was delivered.
func NewDeadlineNotifier(projectRepo domain.ProjectRepository, messenger domain.Messenger, retryOnFailure bool) *DeadlineNotifier {
	return &DeadlineNotifier{
		projectRepo:    projectRepo,
		messenger:      messenger,
		retryOnFailure: retryOnFailure,
		sendDelay:      DefaultSendDelay,
		now:            time.Now,
	}
}

// Run performs one notification sweep and returns the number of messages
// delivered. Concurrent runs are collapsed: only one sweep executes at a
// time, and at most one sweep per day actually sends.
func (n *DeadlineNotifier) Run() int {
	if n.messenger == nil {
		return 0
	}
	if !n.inFlight.CompareAndSwap(false, true) {
		log.Debug().Msg("Notification sweep already in flight, skipping")
		return 0
	}
	defer n.inFlight.Store(false)

	today := util.Midnight(n.now())

	n.mu.Lock()
	alreadyNotified := n.lastNotified.Equal(today)
	n.mu.Unlock()
	if alreadyNotified {
		log.Debug().Msg("Deadline notifications already sent today")
		return 0
	}

	projects, err := n.projectRepo.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load projects for notification sweep")
		return 0
	}

	var due []*domain.Project
	for _, p := range projects {
		if p.Completed {
			continue
		}
		days := util.DaysUntil(p.Deadline, today)
		if days >= 0 && days <= 3 {
			due = append(due, p)
		}
	}
	if len(due) == 0 {
		return 0
	}

	runID := uuid.New()
	sent, failed := 0, 0
	for i, p := range due {
		if i > 0 {
			time.Sleep(n.sendDelay)
		}
		days := util.DaysUntil(p.Deadline, today)
		if err := n.messenger.Send(deadlineMessage(p, days)); err != nil {
			failed++
			log.Error().Err(err).Stringer("run_id", runID).Int32("project_id", p.ID).Msg("Failed to deliver deadline reminder")
			continue
		}
		sent++
	}

	log.Info().Stringer("run_id", runID).Int("sent", sent).Int("failed", failed).Msg("Deadline notification sweep finished")

	// The guard is date-based, not delivery-based: a fully failed sweep only
	// leaves the day open for retry when configured to.
	if sent > 0 || !n.retryOnFailure {
		n.mu.Lock()
		n.lastNotified = today
		n.mu.Unlock()
	}
	return sent
}

// deadlineMessage formats the reminder for a proximity bucket: deadline
// today, tomorrow, or N days out.
func deadlineMessage(p *domain.Project, daysRemaining int) string {
	cost := "$" + p.Cost.StringFixed(2)
	switch daysRemaining {
	case 0:
		return fmt.Sprintf("🚨 <b>Deadline today!</b>\n📋 Project: %s\n📁 Type: %s\n💰 Cost: %s\n⏰ Finish it before the day ends!",
			p.Name, p.Type, cost)
	case 1:
		return fmt.Sprintf("⚠️ <b>Deadline tomorrow!</b>\n📋 Project: %s\n📁 Type: %s\n💰 Cost: %s\n⏰ One day left",
			p.Name, p.Type, cost)
	default:
		return fmt.Sprintf("📅 <b>%d days until deadline</b>\n📋 Project: %s\n📁 Type: %s\n💰 Cost: %s\n📆 Deadline: %s",
			daysRemaining, p.Name, p.Type, cost, p.Deadline.Format(util.DateFormat))
	}
}
