package questionnaire

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cragcoach/internal/profile"
	qn "github.com/abhisek/cragcoach/internal/questionnaire"
	"github.com/abhisek/cragcoach/internal/ratings"
	"github.com/abhisek/cragcoach/internal/ui/components"
)

// field is one focusable form row bound to a session value.
type field interface {
	focus() tea.Cmd
	blur()
	update(msg tea.Msg) tea.Cmd
	// load copies the bound session value into the widget.
	load(s *qn.Session)
	// store copies the widget value back into the session.
	store(s *qn.Session)
	view(width int) string
}

type textField struct {
	input components.TextInput
	bind  func(*qn.Session) *string
}

func newTextField(label, placeholder string, numeric bool, limit int, bind func(*qn.Session) *string) *textField {
	return &textField{
		input: components.NewTextInput(label, placeholder, numeric, limit),
		bind:  bind,
	}
}

func (f *textField) focus() tea.Cmd { return f.input.Focus() }
func (f *textField) blur()          { f.input.Blur() }

func (f *textField) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *textField) load(s *qn.Session)  { f.input.SetValue(*f.bind(s)) }
func (f *textField) store(s *qn.Session) { *f.bind(s) = f.input.Value() }

func (f *textField) view(width int) string { return f.input.View(width) }

type pickerField struct {
	picker components.Picker
	bind   func(*qn.Session) *string
}

func newPickerField(label string, options []string, bind func(*qn.Session) *string) *pickerField {
	return &pickerField{picker: components.NewPicker(label, options, options[0]), bind: bind}
}

func (f *pickerField) focus() tea.Cmd { return f.picker.Focus() }
func (f *pickerField) blur()          { f.picker.Blur() }

func (f *pickerField) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.picker, cmd = f.picker.Update(msg)
	return cmd
}

func (f *pickerField) load(s *qn.Session)  { f.picker.SetValue(*f.bind(s)) }
func (f *pickerField) store(s *qn.Session) { *f.bind(s) = f.picker.Value() }

func (f *pickerField) view(int) string { return f.picker.View() }

type checkField struct {
	list    components.Checklist
	catalog profile.Catalog
	bind    func(*qn.Session) *profile.Selection
}

func newCheckField(label string, catalog profile.Catalog, bind func(*qn.Session) *profile.Selection) *checkField {
	return &checkField{
		list:    components.NewChecklist(label, catalog.Names(), nil),
		catalog: catalog,
		bind:    bind,
	}
}

func (f *checkField) focus() tea.Cmd { return f.list.Focus() }
func (f *checkField) blur()          { f.list.Blur() }

func (f *checkField) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return cmd
}

func (f *checkField) load(s *qn.Session) {
	f.list.SetChecked(f.bind(s).Names(f.catalog))
}

func (f *checkField) store(s *qn.Session) {
	*f.bind(s) = profile.NewSelection(f.list.Values()...)
}

func (f *checkField) view(width int) string { return f.list.View(width) }

type ratingField struct {
	stepper components.Stepper
	name    string
}

func newRatingField(name string) *ratingField {
	return &ratingField{
		stepper: components.NewStepper(name, ratings.DefaultRating, ratings.MinRating, ratings.MaxRating, nil),
		name:    name,
	}
}

func (f *ratingField) focus() tea.Cmd { return f.stepper.Focus() }
func (f *ratingField) blur()          { f.stepper.Blur() }

func (f *ratingField) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.stepper, cmd = f.stepper.Update(msg)
	return cmd
}

func (f *ratingField) load(s *qn.Session)  { f.stepper.SetValue(s.Rating(f.name)) }
func (f *ratingField) store(s *qn.Session) { s.SetRating(f.name, f.stepper.Value) }

func (f *ratingField) view(int) string { return f.stepper.View() }

type sleepField struct {
	stepper components.Stepper
}

func newSleepField() *sleepField {
	return &sleepField{
		stepper: components.NewStepper("Sleep per night", profile.DefaultSleepHours,
			profile.MinSleepHours, profile.MaxSleepHours, qn.FormatSleepHours),
	}
}

func (f *sleepField) focus() tea.Cmd { return f.stepper.Focus() }
func (f *sleepField) blur()          { f.stepper.Blur() }

func (f *sleepField) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.stepper, cmd = f.stepper.Update(msg)
	return cmd
}

func (f *sleepField) load(s *qn.Session)  { f.stepper.SetValue(s.SleepHours) }
func (f *sleepField) store(s *qn.Session) { s.SetSleepHours(f.stepper.Value) }

func (f *sleepField) view(int) string { return f.stepper.View() }

// buildPages lays out the form rows of every questionnaire section.
func buildPages() [qn.SectionCount][]field {
	var pages [qn.SectionCount][]field

	pages[qn.SectionPersonalInfo] = []field{
		newTextField("Name", "Your name", false, 80, func(s *qn.Session) *string { return &s.Name }),
		newTextField("Email", "you@example.com", false, 120, func(s *qn.Session) *string { return &s.Email }),
	}

	pages[qn.SectionClimbingExperience] = []field{
		newTextField("Current climbing grade", "e.g. 5.11a", false, 16,
			func(s *qn.Session) *string { return &s.CurrentClimbingGrade }),
		newTextField("Max boulder grade", "e.g. V5", false, 16,
			func(s *qn.Session) *string { return &s.MaxBoulderGrade }),
		newTextField("Goal", "What are you training for?", false, 200,
			func(s *qn.Session) *string { return &s.Goal }),
		newTextField("Years of training", "e.g. 3", true, 3,
			func(s *qn.Session) *string { return &s.TrainingExperience }),
		newPickerField("Redpointing experience", profile.RedpointingOptions,
			func(s *qn.Session) *string { return &s.RedpointingExperience }),
	}

	abilities := make([]field, 0, len(ratings.Attributes)+2)
	for _, name := range ratings.Attributes {
		abilities = append(abilities, newRatingField(name))
	}
	abilities = append(abilities,
		newCheckField("Preferred style", profile.ClimbingStyles,
			func(s *qn.Session) *profile.Selection { return &s.PreferredClimbingStyle }),
		newPickerField("Indoor vs outdoor", profile.IndoorOutdoorOptions,
			func(s *qn.Session) *string { return &s.IndoorVsOutdoor }),
	)
	pages[qn.SectionAbilitiesStyle] = abilities

	pages[qn.SectionTrainingSetup] = []field{
		newCheckField("Training facilities", profile.TrainingFacilities,
			func(s *qn.Session) *profile.Selection { return &s.TrainingFacilities }),
		newCheckField("General fitness", profile.FitnessLevels,
			func(s *qn.Session) *profile.Selection { return &s.GeneralFitness }),
		newPickerField("Access to coaches", profile.CoachAccessOptions,
			func(s *qn.Session) *string { return &s.AccessToCoaches }),
		newPickerField("Time for cross-training", profile.CrossTrainingOptions,
			func(s *qn.Session) *string { return &s.TimeForCrossTraining }),
	}

	pages[qn.SectionHealthRecovery] = []field{
		newTextField("Injury history", "Past or current injuries", false, 300,
			func(s *qn.Session) *string { return &s.InjuryHistory }),
		newSleepField(),
		newPickerField("Work-life balance", profile.WorkLifeBalanceOptions,
			func(s *qn.Session) *string { return &s.WorkLifeBalance }),
		newPickerField("Motivation", profile.MotivationOptions,
			func(s *qn.Session) *string { return &s.MotivationLevel }),
	}

	pages[qn.SectionAdditionalInfo] = []field{
		newPickerField("Height", profile.HeightOptions, func(s *qn.Session) *string { return &s.Height }),
		newPickerField("Weight", profile.WeightOptions, func(s *qn.Session) *string { return &s.Weight }),
		newPickerField("Age", profile.AgeOptions, func(s *qn.Session) *string { return &s.Age }),
		newTextField("Additional notes", "Anything else your coach should know", false, 500,
			func(s *qn.Session) *string { return &s.AdditionalNotes }),
	}

	return pages
}
