package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/germanamz/cinifilme/pkg/settings"
)

// Settings actions offered by the editor.
const (
	actionSave   = "save"
	actionClear  = "clear"
	actionCancel = "cancel"
)

func newSettingsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Save or clear the TMDB API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(flags)
			if err != nil {
				return err
			}
			defer s.close()
			return runSettingsEditor(s.store, cmd.OutOrStdout())
		},
	}
}

func runSettingsEditor(store *settings.Store, out io.Writer) error {
	action := actionSave
	var key string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("TMDB settings").
				Description("Current key: "+settings.Mask(store.APIKey())),
			huh.NewSelect[string]().
				Title("Action").
				Options(
					huh.NewOption("Save a new key", actionSave),
					huh.NewOption("Clear the saved key", actionClear),
					huh.NewOption("Cancel", actionCancel),
				).
				Value(&action),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("TMDB API key").
				EchoMode(huh.EchoModePassword).
				Value(&key).
				Validate(validateAPIKey),
		).WithHideFunc(func() bool { return action != actionSave }),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("settings: %w", err)
	}

	msg, err := applySettings(store, action, key)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, msg)
	return nil
}

func validateAPIKey(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("key is required")
	}
	return nil
}

// applySettings performs action on store and returns a message for the user.
func applySettings(store *settings.Store, action, key string) (string, error) {
	switch action {
	case actionSave:
		if err := validateAPIKey(key); err != nil {
			return "", fmt.Errorf("settings: %w", err)
		}
		if err := store.SetAPIKey(key); err != nil {
			return "", err
		}
		return "Saved key " + settings.Mask(store.APIKey()), nil
	case actionClear:
		if err := store.ClearAPIKey(); err != nil {
			return "", err
		}
		return "Cleared the saved key; the built-in catalog will be used", nil
	default:
		return "Nothing changed", nil
	}
}
