// Command worker runs the scheduled jobs: the daily birthday greetings.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/BruksfildServices01/studio-gestor/internal/app"
	"github.com/BruksfildServices01/studio-gestor/internal/config"
	dbpkg "github.com/BruksfildServices01/studio-gestor/internal/db"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
	"github.com/BruksfildServices01/studio-gestor/internal/timezone"
)

func main() {
	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var kv store.KV = store.NewMemoryKV()
	if rdb := dbpkg.NewRedis(cfg); rdb != nil {
		kv = store.NewRedisKV(rdb)
	}

	a := app.New(db, kv, cfg)
	defer a.Close()

	if a.Gateway == nil {
		log.Fatal("worker: no messaging gateway configured")
	}

	c := cron.New(cron.WithLocation(timezone.Location(cfg.Timezone)))
	if _, err := c.AddFunc(cfg.BirthdayCron, func() { greetAll(a) }); err != nil {
		log.Fatalf("worker: invalid BIRTHDAY_CRON %q: %v", cfg.BirthdayCron, err)
	}

	c.Start()
	log.Printf("worker: birthday job scheduled (%s)", cfg.BirthdayCron)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	<-c.Stop().Done()
	log.Println("worker: stopped")
}

// greetAll sends the birthday greetings of every owner with a profile.
func greetAll(a *app.App) {
	ctx := context.Background()

	var owners []string
	if err := a.DB.Model(&models.Profile{}).Pluck("user_id", &owners).Error; err != nil {
		log.Printf("worker: list owners: %v", err)
		return
	}

	total := 0
	for _, owner := range owners {
		n, err := a.Dashboard.GreetBirthdays(ctx, owner)
		if err != nil {
			log.Printf("worker: birthdays for %s: %v", owner, err)
			continue
		}
		total += n
	}
	log.Printf("worker: %d birthday greetings sent to %d owners", total, len(owners))
}
