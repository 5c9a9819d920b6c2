package scheduler

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Sender abstracts the transport used for the broadcast.
type Sender interface {
	SendText(chatID int64, text string) error
}

// Scheduler sends the daily menu prompt to every registered chat.
type Scheduler struct {
	cron     *cron.Cron
	registry *Registry
	sender   Sender
	message  string
}

// New builds a scheduler firing daily at the given HH:MM wall time in the
// given timezone.
func New(registry *Registry, sender Sender, timezone, dailyAt, message string) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	spec, err := cronSpec(dailyAt)
	if err != nil {
		return nil, err
	}

	s := &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		registry: registry,
		sender:   sender,
		message:  message,
	}

	if _, err := s.cron.AddFunc(spec, s.Broadcast); err != nil {
		return nil, fmt.Errorf("schedule daily prompt: %w", err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Printf("[SCHEDULER] daily prompt scheduled")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// Broadcast sends the prompt to every registered chat. A failing chat is
// logged and skipped; the broadcast continues.
func (s *Scheduler) Broadcast() {
	for _, chatID := range s.registry.Chats() {
		if err := s.sender.SendText(chatID, s.message); err != nil {
			log.Printf("[SCHEDULER] failed to send to %d: %v", chatID, err)
			continue
		}
		log.Printf("[SCHEDULER] prompt sent to %d", chatID)
	}
}

// cronSpec converts "HH:MM" into a daily cron expression.
func cronSpec(dailyAt string) (string, error) {
	parts := strings.Split(dailyAt, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid schedule time %q, want HH:MM", dailyAt)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid schedule hour %q", parts[0])
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid schedule minute %q", parts[1])
	}

	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}
