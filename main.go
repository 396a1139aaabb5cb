package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/Tom-Gray/beerLeague/config"
	"github.com/Tom-Gray/beerLeague/controller"
	"github.com/Tom-Gray/beerLeague/db"
	"github.com/Tom-Gray/beerLeague/export"
	"github.com/Tom-Gray/beerLeague/players"
	"github.com/Tom-Gray/beerLeague/sleeper"
	"github.com/Tom-Gray/beerLeague/web"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	clock := clock.New()
	db, err := db.New(context.Background(), cfg.ConnString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	sleeperClient, err := sleeper.New(clock)
	if err != nil {
		log.Fatalf("error creating sleeper client: %v", err)
	}

	store, err := export.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("error creating export store: %v", err)
	}

	cache := players.NewCache(sleeperClient, cfg.PlayersFile(), clock)
	if err := cache.Load(); err != nil {
		log.Fatalf("error loading player cache: %v", err)
	}

	ctrl, err := controller.New(clock, sleeperClient, db, cache, store, cfg.LeagueID)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(cfg.Port, ctrl, cfg.AdminPass)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that re-syncs the current week's bench scores and
	// refreshes the dashboard files.
	wg.Add(1)
	go ctrl.RunPeriodicSync(cfg.SyncFrequency, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
