package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/asolis/contactbook/app"
	"github.com/asolis/contactbook/app/countries"
	"github.com/asolis/contactbook/app/database"
	"github.com/asolis/contactbook/app/people"
	"github.com/asolis/contactbook/internal/cache"
	"github.com/asolis/contactbook/internal/deps"
	"github.com/asolis/contactbook/internal/logger"
	"github.com/asolis/contactbook/internal/sanitizer"
	"github.com/asolis/contactbook/models"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.New(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	appLogger := logger.NewZeroLogger(os.Stderr, parseLogLevel(cfg.LogLevel), logger.Fields{
		"app": "contactbook",
		"env": cfg.Env,
	})

	merge, err := models.ParseMergeStrategy(cfg.PeopleUpdateMode)
	if err != nil {
		log.Fatal("Invalid people update mode:", err)
	}

	container := deps.NewContainer(db, appLogger, sanitizer.NewHTMLStripper())

	countrySvc := countries.Init(container, newCountryListCache(cfg), countries.Config{
		TrimNames:       cfg.CountryNameTrim,
		CaseInsensitive: cfg.CountryNameCaseInsensitive,
		CacheTTL:        cfg.CacheTTL,
	})
	personSvc := people.Init(container, merge)

	if err := run(context.Background(), os.Args[1:], countrySvc, personSvc); err != nil {
		log.Fatal(err)
	}
}

func newCountryListCache(cfg *app.Config) cache.Cache[[]models.Country] {
	switch cfg.CacheBackend {
	case cache.RedisBackend:
		return cache.NewRedisCache[[]models.Country](&cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	default: // cache.MemoryBackend
		return cache.NewMemoryCache[[]models.Country]()
	}
}

func parseLogLevel(s string) logger.Level {
	switch s {
	case "debug":
		return logger.LevelDebug
	case "error":
		return logger.LevelError
	case "off":
		return logger.LevelOff
	default:
		return logger.LevelInfo
	}
}

func run(ctx context.Context, args []string, countrySvc countries.Service, personSvc people.Service) error {
	if len(args) == 0 {
		return usage()
	}

	switch args[0] {
	case "countries":
		list, err := countrySvc.GetCountries(ctx)
		if err != nil {
			return err
		}
		for _, c := range list {
			fmt.Printf("%s\t%s\n", c.ID, c.Name)
		}
		return nil

	case "add-country":
		if len(args) != 2 {
			return usage()
		}
		name := args[1]
		country, err := countrySvc.AddCountry(ctx, &countries.CountryAddRequest{Name: &name})
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", country.ID, country.Name)
		return nil

	case "import-countries":
		// One country name per line on stdin.
		scanner := bufio.NewScanner(os.Stdin)
		var names []string
		for scanner.Scan() {
			names = append(names, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return err
		}
		added, err := countrySvc.ImportCountries(ctx, names)
		if err != nil {
			return err
		}
		fmt.Printf("imported %d of %d\n", added, len(names))
		return nil

	case "people":
		list, err := personSvc.GetPeople(ctx)
		if err != nil {
			return err
		}
		printPeople(list)
		return nil

	case "search":
		if len(args) != 3 {
			return usage()
		}
		list, err := personSvc.GetFilteredPeople(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		printPeople(list)
		return nil
	}

	return usage()
}

func printPeople(list []people.PersonResponse) {
	for _, p := range list {
		age := "-"
		if p.Age != nil {
			age = fmt.Sprintf("%.0f", *p.Age)
		}
		fmt.Printf("%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Email, age, p.CountryName)
	}
}

func usage() error {
	return errors.New(strings.TrimSpace(`
usage: contactbook <command>

  countries                  list all countries
  add-country <name>         register a country
  import-countries           read one country name per line from stdin
  people                     list all people
  search <field> <query>     filter people by one field
`))
}
