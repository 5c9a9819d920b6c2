package main

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/HenTyna/foot-auto-poll-bot/internal/bot"
	"github.com/HenTyna/foot-auto-poll-bot/internal/config"
	"github.com/HenTyna/foot-auto-poll-bot/internal/order"
	"github.com/HenTyna/foot-auto-poll-bot/internal/router"
	"github.com/HenTyna/foot-auto-poll-bot/internal/scheduler"
	"github.com/HenTyna/foot-auto-poll-bot/internal/session"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	log.Println("Environment loaded successfully")

	// ───────────────────────── ENGINE ─────────────────────────
	store := session.NewStore()
	sessions := session.NewService(store)
	views := order.NewViews(sessions)

	// ───────────────────────── TELEGRAM ─────────────────────────
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal("❌ Telegram init failed:", err)
	}

	registry := scheduler.NewRegistry()
	handler := bot.NewHandler(api, sessions, views, registry, cfg.OrderName)

	// ───────────────────────── SCHEDULER ─────────────────────────
	daily, err := scheduler.New(registry, handler, cfg.Timezone, cfg.DailyAt, cfg.DailyPrompt)
	if err != nil {
		log.Fatal("❌ Scheduler init failed:", err)
	}
	handler.AttachScheduler(daily)
	daily.Start()
	defer daily.Stop()

	// ───────────────────────── HTTP ─────────────────────────
	r := router.NewRouter(views)
	go func() {
		if err := r.Run(cfg.HTTPAddr); err != nil {
			log.Fatal("❌ HTTP server failed:", err)
		}
	}()

	// ───────────────────────── POLL LOOP ─────────────────────────
	handler.Run()
}
