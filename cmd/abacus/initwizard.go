package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/germanamz/abacus/pkg/abacusdir"
	"github.com/germanamz/abacus/pkg/config"
)

// wizardAnswers holds the raw form values of `abacus init`.
type wizardAnswers struct {
	MaxInputLength string
	ToastDuration  string
	ShowKeypad     bool
	LogLevel       string
	LogToFile      bool
}

func defaultAnswers() wizardAnswers {
	def := config.Default()
	return wizardAnswers{
		MaxInputLength: strconv.Itoa(def.MaxInputLength),
		ToastDuration:  def.Toast.Duration,
		ShowKeypad:     def.Keypad.Show,
		LogLevel:       def.Log.Level,
	}
}

func runWizard() (wizardAnswers, error) {
	a := defaultAnswers()

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Maximum operand length").
				Description("Digits you can type into one number (0 = unlimited).").
				Value(&a.MaxInputLength).
				Validate(validateInputLength),
			huh.NewSelect[string]().
				Title("Notification duration").
				Options(
					huh.NewOption("1 second", "1s"),
					huh.NewOption("3 seconds", "3s"),
					huh.NewOption("5 seconds", "5s"),
				).
				Value(&a.ToastDuration),
			huh.NewConfirm().Title("Show the on-screen keypad?").Value(&a.ShowKeypad),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("Debug", "debug"),
					huh.NewOption("Info", "info"),
					huh.NewOption("Warn", "warn"),
					huh.NewOption("Error", "error"),
				).
				Value(&a.LogLevel),
			huh.NewConfirm().Title("Write logs to .abacus/local/abacus.log?").Value(&a.LogToFile),
		),
	).Run()

	return a, err
}

func validateInputLength(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a whole number")
	}
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

// buildConfig turns wizard answers into a validated configuration.
func buildConfig(a wizardAnswers, d abacusdir.Dir) (config.Config, error) {
	if err := validateInputLength(a.MaxInputLength); err != nil {
		return config.Config{}, fmt.Errorf("max input length: %w", err)
	}
	n, _ := strconv.Atoi(a.MaxInputLength)

	cfg := config.Default()
	cfg.MaxInputLength = n
	cfg.Toast.Duration = a.ToastDuration
	cfg.Keypad.Show = a.ShowKeypad
	cfg.Log.Level = a.LogLevel
	if a.LogToFile {
		cfg.Log.File = d.LogPath()
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// runInit writes <dir>/config.yaml from the answers returned by ask, or from
// the defaults when ask is nil. An existing config is reported before asking.
func runInit(dirPath string, ask func() (wizardAnswers, error)) error {
	d := abacusdir.New(dirPath)

	if _, err := os.Stat(d.ConfigPath()); err == nil {
		return fmt.Errorf("init: %s: %w", d.ConfigPath(), abacusdir.ErrExists)
	}

	answers := defaultAnswers()
	if ask != nil {
		var err error
		if answers, err = ask(); err != nil {
			return err
		}
	}

	cfg, err := buildConfig(answers, d)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := abacusdir.BootstrapWithConfig(d, data); err != nil {
		return err
	}

	fmt.Printf("Initialized %s\n", d.Root())

	return nil
}
