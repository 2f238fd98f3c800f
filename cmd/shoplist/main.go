package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"shoplist/internal/client"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: shoplist <command> [flags]

commands:
  list                        show all lists grouped by category
  create -name N [-category C]
  get -id ID
  update -id ID -name N [-done true|false]
  delete -id ID
  toggle -id ID -done CURRENT
  status                      probe the backend and show connection status
  config [-mock B] [-url U] [-identity I]`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	svc := client.NewService(os.Getenv("SHOPLIST_CONFIG"))
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(ctx, svc)
	case "create":
		err = runCreate(ctx, svc, os.Args[2:])
	case "get":
		err = runGet(ctx, svc, os.Args[2:])
	case "update":
		err = runUpdate(ctx, svc, os.Args[2:])
	case "delete":
		err = runDelete(ctx, svc, os.Args[2:])
	case "toggle":
		err = runToggle(ctx, svc, os.Args[2:])
	case "status":
		err = runStatus(ctx, svc)
	case "config":
		err = runConfig(svc, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func printList(l client.DisplayList) {
	done := " "
	if l.Done {
		done = "x"
	}
	fmt.Printf("  [%s] %s (id=%s)\n", done, l.Name, l.ID)
	for _, ing := range l.Ingredients {
		fmt.Printf("      - %s\n", ing)
	}
}

func runList(ctx context.Context, svc *client.Service) error {
	lists, err := svc.GetAll(ctx)
	if err != nil {
		return err
	}

	// Group by category, the way the home page shows them.
	byCategory := map[string][]client.DisplayList{}
	for _, l := range lists {
		byCategory[l.Category] = append(byCategory[l.Category], l)
	}
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, c := range categories {
		fmt.Println(c)
		for _, l := range byCategory[c] {
			printList(l)
		}
	}
	return nil
}

func runCreate(ctx context.Context, svc *client.Service, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	name := fs.String("name", "", "list name")
	category := fs.String("category", "", "category (optional)")
	fs.Parse(args)
	if strings.TrimSpace(*name) == "" {
		return fmt.Errorf("-name is required")
	}
	l, err := svc.Create(ctx, *name, *category)
	if err != nil {
		return err
	}
	printList(l)
	return nil
}

func runGet(ctx context.Context, svc *client.Service, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	id := fs.String("id", "", "list id")
	fs.Parse(args)
	l, err := svc.Get(ctx, *id)
	if err != nil {
		return err
	}
	printList(l)
	return nil
}

func runUpdate(ctx context.Context, svc *client.Service, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	id := fs.String("id", "", "list id")
	name := fs.String("name", "", "new name")
	done := fs.Bool("done", false, "done flag")
	fs.Parse(args)

	var donePtr *bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "done" {
			donePtr = done
		}
	})

	l, err := svc.Update(ctx, *id, *name, donePtr)
	if err != nil {
		return err
	}
	printList(l)
	return nil
}

func runDelete(ctx context.Context, svc *client.Service, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "list id")
	fs.Parse(args)
	if err := svc.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Println("deleted", *id)
	return nil
}

func runToggle(ctx context.Context, svc *client.Service, args []string) error {
	fs := flag.NewFlagSet("toggle", flag.ExitOnError)
	id := fs.String("id", "", "list id")
	done := fs.Bool("done", false, "current done state")
	fs.Parse(args)
	l, err := svc.ToggleDone(ctx, *id, *done)
	if err != nil {
		return err
	}
	printList(l)
	return nil
}

func runStatus(ctx context.Context, svc *client.Service) error {
	svc.RefreshConnection(ctx)
	st := svc.ConnectionStatus()
	fmt.Printf("online:     %v\n", st.IsOnline)
	fmt.Printf("using mock: %v\n", st.UsingMock)
	fmt.Printf("service:    %s\n", st.Service)
	cfg := svc.Config()
	fmt.Printf("url:        %s\n", cfg.APIBaseURL)
	fmt.Printf("identity:   %s\n", cfg.UserIdentity)
	return nil
}

func runConfig(svc *client.Service, args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	mock := fs.Bool("mock", false, "use mock data")
	url := fs.String("url", "", "backend base URL")
	identity := fs.String("identity", "", "user identity header value")
	fs.Parse(args)

	var u client.ConfigUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mock":
			u.UseMockData = mock
		case "url":
			u.APIBaseURL = url
		case "identity":
			u.UserIdentity = identity
		}
	})

	if u.UseMockData == nil && u.APIBaseURL == nil && u.UserIdentity == nil {
		cfg := svc.Config()
		fmt.Printf("useMockData: %v\napiBaseUrl:  %s\nuserIdentity: %s\n",
			cfg.UseMockData, cfg.APIBaseURL, cfg.UserIdentity)
		return nil
	}
	return svc.SetConfig(u)
}
