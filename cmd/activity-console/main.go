// Package main — консольный фронтенд страницы записи на активности.
// Вся логика живёт в internal/view; здесь только текстовые виджеты и цикл ввода.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"activity-signup-service/internal/client"
	"activity-signup-service/internal/config"
	"activity-signup-service/internal/view"
)

type consoleList struct {
	out io.Writer
}

func (l *consoleList) ShowCards(cards []view.Card) {
	for _, card := range cards {
		fmt.Fprintf(l.out, "\n%s (%s)\n", card.Name, card.Capacity)
		fmt.Fprintf(l.out, "  %s\n", card.Description)
		fmt.Fprintf(l.out, "  Schedule: %s\n", card.Schedule)
		for _, p := range card.Participants {
			fmt.Fprintf(l.out, "  - %s\n", p)
		}
	}
}

func (l *consoleList) ShowError(text string) {
	fmt.Fprintf(l.out, "\n%s\n", text)
}

type consoleSelect struct {
	out     io.Writer
	options []string
}

func (s *consoleSelect) SetOptions(options []string) {
	s.options = options
}

func (s *consoleSelect) printOptions() {
	fmt.Fprintln(s.out, "\nActivities:")
	for i, name := range s.options {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, name)
	}
}

// resolve принимает номер пункта или имя активности как есть.
func (s *consoleSelect) resolve(input string) string {
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(s.options) {
		return s.options[n-1]
	}
	return input
}

type consoleMessage struct {
	out io.Writer
}

func (m *consoleMessage) ShowSuccess(text string) {
	fmt.Fprintf(m.out, "OK: %s\n", text)
}

func (m *consoleMessage) ShowError(text string) {
	fmt.Fprintf(m.out, "ERROR: %s\n", text)
}

type consoleForm struct {
	email    string
	activity string
}

func (f *consoleForm) Values() (string, string) {
	return f.email, f.activity
}

func (f *consoleForm) Reset() {
	f.email = ""
	f.activity = ""
}

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	baseURL := cfg.Client.BaseURL
	if baseURL == "" {
		// пустой base_url означает «сервер из этой же конфигурации»
		addr := cfg.HTTP.Addr
		if strings.HasPrefix(addr, ":") {
			addr = "localhost" + addr
		}
		baseURL = "http://" + addr
	}

	list := &consoleList{out: os.Stdout}
	sel := &consoleSelect{out: os.Stdout}
	msg := &consoleMessage{out: os.Stdout}
	form := &consoleForm{}

	api := client.New(baseURL, nil)
	v := view.NewView(
		api,
		view.Widgets{List: list, Select: sel, Message: msg, Form: form},
		logger,
	)

	in := bufio.NewScanner(os.Stdin)
	prompt := func(label string) (string, bool) {
		fmt.Print(label)
		if !in.Scan() {
			return "", false
		}
		return strings.TrimSpace(in.Text()), true
	}

	v.LoadActivities(ctx)
	for {
		sel.printOptions()

		email, ok := prompt("\nEmail (empty to quit): ")
		if !ok || email == "" {
			return
		}
		choice, ok := prompt("Activity (number or name): ")
		if !ok {
			return
		}
		action, ok := prompt("Action (signup/unregister) [signup]: ")
		if !ok {
			return
		}

		if action == "unregister" {
			message, err := api.Unregister(ctx, sel.resolve(choice), email)
			if err != nil {
				msg.ShowError(err.Error())
				continue
			}
			msg.ShowSuccess(message)
			v.LoadActivities(ctx)
			continue
		}

		form.email = email
		form.activity = sel.resolve(choice)
		v.HandleSubmit(ctx)
	}
}
