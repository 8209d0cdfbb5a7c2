package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"court_booking/internal/config"
	"court_booking/internal/dashboard"

	"github.com/sirupsen/logrus"
)

const usage = `Usage: admindash <command>

Commands:
  login          authenticate and store the session
  logout         destroy the stored session
  show           verify admin access and render users and bookings
  delete <id>    delete a user after confirmation
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.LoadDashboardConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	store := dashboard.NewFileStore(cfg.Credentials.Path)
	httpClient := &http.Client{Timeout: 15 * time.Second}
	ctx := context.Background()

	switch os.Args[1] {
	case "login":
		runLogin(ctx, cfg, store, httpClient)
	case "logout":
		if err := dashboard.ClearSession(store); err != nil {
			logrus.WithError(err).Fatal("Failed to clear session")
		}
		fmt.Println("Logged out.")
	case "show":
		runShow(ctx, cfg, store, httpClient)
	case "delete":
		if len(os.Args) < 3 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		runDelete(ctx, cfg, store, httpClient, os.Args[2])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runLogin(ctx context.Context, cfg config.DashboardConfig, store dashboard.CredentialStore, httpClient *http.Client) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)

	fmt.Print("Password: ")
	password, _ := reader.ReadString('\n')
	password = strings.TrimSpace(password)

	client := dashboard.NewClient(cfg.API.BaseURL, "", httpClient)
	sess, err := client.Login(ctx, email, password)
	if err != nil {
		logrus.WithError(err).Fatal("Login failed")
	}
	if err := dashboard.SaveSession(store, sess); err != nil {
		logrus.WithError(err).Fatal("Failed to store session")
	}
	fmt.Printf("Logged in as %s (%s).\n", sess.Claim.Name, sess.Claim.Role)
}

func loadSessionOrExit(store dashboard.CredentialStore) *dashboard.Session {
	sess, err := dashboard.LoadSession(store)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load session")
	}
	if sess == nil {
		fmt.Fprintln(os.Stderr, "Not logged in. Run: admindash login")
		os.Exit(1)
	}
	return sess
}

func runShow(ctx context.Context, cfg config.DashboardConfig, store dashboard.CredentialStore, httpClient *http.Client) {
	sess := loadSessionOrExit(store)

	d := dashboard.New(cfg.API.BaseURL, sess, httpClient)
	if err := d.Open(ctx); err != nil {
		if errors.Is(err, dashboard.ErrAccessDenied) {
			fmt.Fprintln(os.Stderr, "Access denied. Please log in as an admin.")
			os.Exit(1)
		}
		logrus.WithError(err).Fatal("Failed to load dashboard data")
	}

	if err := dashboard.Render(os.Stdout, d.State()); err != nil {
		logrus.WithError(err).Fatal("Failed to render dashboard")
	}
}

func runDelete(ctx context.Context, cfg config.DashboardConfig, store dashboard.CredentialStore, httpClient *http.Client, id string) {
	sess := loadSessionOrExit(store)

	fmt.Printf("Delete user %s? [y/N]: ", id)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if strings.TrimSpace(strings.ToLower(answer)) != "y" {
		fmt.Println("Aborted.")
		return
	}

	d := dashboard.New(cfg.API.BaseURL, sess, httpClient)
	message, err := d.DeleteUser(ctx, id)
	if err != nil {
		if errors.Is(err, dashboard.ErrAccessDenied) {
			fmt.Fprintln(os.Stderr, "Access denied. Please log in as an admin.")
			os.Exit(1)
		}
		logrus.WithError(err).Fatal("Failed to delete user")
	}
	fmt.Println(message)
}
