package builder

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the user leaves the wizard
var ErrCancelled = errors.New("cancelled")

// NewForm builds the wizard form. Answers are written into s.
func NewForm(s *Spec) *huh.Form {
	if s.Separator == "" {
		s.Separator = " -> "
	}
	if s.Color == "" {
		s.Color = Colors[0]
	}

	colorOpts := make([]huh.Option[string], len(Colors))
	for i, c := range Colors {
		colorOpts[i] = huh.NewOption(c, c)
	}

	moduleOpts := make([]huh.Option[string], 0, len(moduleKeys))
	for _, name := range ModuleNames() {
		moduleOpts = append(moduleOpts, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Theme name").
				Value(&s.Name).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Logo").
				Description("Built-in logo name or image path, empty for auto").
				Value(&s.Logo),
			huh.NewInput().
				Title("Separator").
				Value(&s.Separator),
			huh.NewSelect[string]().
				Title("Key color").
				Options(colorOpts...).
				Value(&s.Color),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Modules").
				Options(moduleOpts...).
				Height(12).
				Value(&s.Modules).
				Validate(func(v []string) error {
					if len(v) == 0 {
						return errors.New("select at least one module")
					}
					return nil
				}),
		),
	)
}

// RunWizard asks for a theme interactively
func RunWizard(accessible bool) (Spec, error) {
	var s Spec
	if err := NewForm(&s).WithAccessible(accessible).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return Spec{}, ErrCancelled
		}
		return Spec{}, err
	}
	return s, nil
}
