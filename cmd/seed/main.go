// Command seed fills one owner's studio with demo data.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-gestor/internal/app"
	"github.com/BruksfildServices01/studio-gestor/internal/config"
	dbpkg "github.com/BruksfildServices01/studio-gestor/internal/db"
	apptdomain "github.com/BruksfildServices01/studio-gestor/internal/domain/appointment"
	findomain "github.com/BruksfildServices01/studio-gestor/internal/domain/finance"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
	"github.com/BruksfildServices01/studio-gestor/internal/timezone"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/appointment"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/catalog"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/clients"
)

var demoServices = []struct {
	name     string
	category string
	value    string
	minutes  int
}{
	{"Corte feminino", "Cabeleireiro(a)", "80", 60},
	{"Escova", "Cabeleireiro(a)", "45", 40},
	{"Esmaltação em gel", "Nail Designer", "60", 50},
	{"Design com henna", "Designer de Sobrancelhas", "40", 30},
	{"Limpeza de pele profunda", "Esteticista", "120", 90},
}

func main() {
	owner := flag.String("owner", "", "owner id (JWT sub) to seed")
	nClients := flag.Int("clients", 30, "number of clients")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if *owner == "" {
		log.Fatal("-owner is required")
	}
	log.Println("seed starting")

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var kv store.KV = store.NewMemoryKV()
	if rdb := dbpkg.NewRedis(cfg); rdb != nil {
		kv = store.NewRedisKV(rdb)
	}

	a := app.New(db, kv, cfg)
	defer a.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	gofakeit.Seed(0) // 0 = semente aleatória

	services, err := seedServices(ctx, a.Services, *owner)
	if err != nil {
		log.Fatalf("seed services: %v", err)
	}
	people, err := seedClients(ctx, a.Clients, *owner, *nClients)
	if err != nil {
		log.Fatalf("seed clients: %v", err)
	}
	if err := seedAgenda(ctx, a, *owner, services, people); err != nil {
		log.Fatalf("seed agenda: %v", err)
	}
	if err := seedLedger(ctx, a, *owner); err != nil {
		log.Fatalf("seed ledger: %v", err)
	}

	log.Println("seed complete")
}

func seedServices(ctx context.Context, svc *catalog.Services, owner string) ([]models.Service, error) {
	log.Printf("seeding %d services", len(demoServices))

	out := make([]models.Service, 0, len(demoServices))
	for _, d := range demoServices {
		s, err := svc.Create(ctx, owner, catalog.CreateInput{
			Name:        d.name,
			Category:    d.category,
			Value:       decimal.RequireFromString(d.value),
			DurationMin: d.minutes,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, nil
}

func seedClients(ctx context.Context, svc *clients.Service, owner string, count int) ([]models.Client, error) {
	log.Printf("seeding %d clients", count)

	today := time.Now()
	out := make([]models.Client, 0, count)
	for i := 0; i < count; i++ {
		birth := gofakeit.DateRange(today.AddDate(-60, 0, 0), today.AddDate(-18, 0, 0))
		if i == 0 {
			// sempre um aniversariante no dia
			birth = time.Date(1990, today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		}

		cl, err := svc.Create(ctx, owner, clients.Input{
			Name:      gofakeit.Name(),
			Phone:     fmt.Sprintf("119%08d", gofakeit.Number(0, 99999999)),
			Email:     gofakeit.Email(),
			BirthDate: birth.Format(timezone.DateLayout),
		})
		if err != nil {
			return nil, err
		}
		out = append(out, *cl)
	}
	return out, nil
}

func seedAgenda(ctx context.Context, a *app.App, owner string, services []models.Service, people []models.Client) error {
	if len(people) == 0 {
		return nil
	}

	sched := appointment.NewSchedule(owner, a.Appointments, nil, nil, a.Profiles.Location(ctx, owner))
	slots := []string{"09:00", "10:00", "11:30", "14:00", "15:30", "17:00"}

	for day := 0; day < 5; day++ {
		date := timezone.DateString(time.Now().AddDate(0, 0, day))
		for _, slot := range slots {
			cl := people[gofakeit.Number(0, len(people)-1)]
			svc := services[gofakeit.Number(0, len(services)-1)]

			if _, err := sched.Create(ctx, apptdomain.Draft{
				ClientName:  cl.Name,
				ClientPhone: cl.Phone,
				Services:    models.ServiceItems{svc.Item()},
				Date:        date,
				Time:        slot,
			}); err != nil {
				return err
			}
		}
	}
	log.Printf("seeded %d appointments", 5*len(slots))
	return nil
}

func seedLedger(ctx context.Context, a *app.App, owner string) error {
	today := time.Now()
	for i := 0; i < 10; i++ {
		kind, cats := findomain.KindIncome, findomain.IncomeCategories
		if gofakeit.Bool() {
			kind, cats = findomain.KindExpense, findomain.ExpenseCategories
		}

		if _, err := a.Ledger.Add(ctx, owner, findomain.Entry{
			Description: gofakeit.ProductName(),
			Category:    cats[gofakeit.Number(0, len(cats)-1)],
			Kind:        kind,
			Value:       decimal.NewFromFloat(gofakeit.Price(10, 300)).Round(2),
			Date:        timezone.DateString(today.AddDate(0, 0, -gofakeit.Number(0, 40))),
		}); err != nil {
			return err
		}
	}
	log.Println("seeded 10 transactions")
	return nil
}
