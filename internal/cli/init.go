package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/iksdev/habita/internal/constants"
	"github.com/iksdev/habita/internal/engine"
	"github.com/iksdev/habita/internal/models"
	"github.com/iksdev/habita/internal/utils"
)

type InitCmd struct {
	Username string `help:"Username (skips the interactive form when set together with --yes)."`
	Email    string `help:"Email address."`
	Timezone string `help:"IANA timezone name." default:"Local"`
	Yes      bool   `help:"Accept defaults without the interactive form."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized habita storage at: %s\n", ctx.Store.GetConfigPath())

	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}
	if snap.User != nil {
		return fmt.Errorf("profile already exists for %q", snap.User.Username)
	}

	username := c.Username
	email := c.Email
	timezone := c.Timezone
	antiMotivation := false
	goals := make([]string, 3)

	if !c.Yes {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Username").
					Value(&username).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("username cannot be empty")
						}
						return nil
					}),
				huh.NewInput().
					Title("Email").
					Value(&email),
				huh.NewInput().
					Title("Timezone (IANA name, empty for system)").
					Value(&timezone).
					Validate(func(s string) error {
						_, err := utils.LoadLocation(s)
						return err
					}),
				huh.NewConfirm().
					Title("Anti-motivation mode? (blunt lines instead of encouragement)").
					Value(&antiMotivation),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("A goal for yourself in 30 days (optional)").
					Value(&goals[0]),
				huh.NewInput().
					Title("A goal for yourself in 90 days (optional)").
					Value(&goals[1]),
				huh.NewInput().
					Title("A goal for yourself in a year (optional)").
					Value(&goals[2]),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username cannot be empty")
	}

	now := time.Now()
	today := now.Format(constants.DateFormat)

	snap = engine.Reduce(snap, engine.SetUser{User: models.User{
		ID:             uuid.New().String(),
		Username:       username,
		Email:          email,
		JoinDate:       today,
		Timezone:       timezone,
		Onboarded:      true,
		AntiMotivation: antiMotivation,
	}})

	// Each goal becomes a message from today's self, revealed at a fixed
	// future offset.
	var messages []models.FutureMessage
	for i, goal := range goals {
		if strings.TrimSpace(goal) == "" || i >= len(constants.OnboardingTargetOffsets) {
			continue
		}
		messages = append(messages, models.FutureMessage{
			ID:            uuid.New().String(),
			TargetDate:    utils.AddDays(today, constants.OnboardingTargetOffsets[i]),
			Content:       goal,
			AuthorVersion: models.AuthorPast,
			CreatedAt:     now,
		})
	}
	if len(messages) > 0 {
		snap = engine.Reduce(snap, engine.AddMessages{Messages: messages})
	}

	if err := ctx.Store.Save(snap); err != nil {
		return err
	}

	fmt.Printf("Welcome, %s. No noise. Just consistency.\n", username)
	return nil
}
