package appstate

// AudioQuality selects the stream bitrate tier.
type AudioQuality string

const (
	QualityNormal AudioQuality = "normal"
	QualityHigh   AudioQuality = "high"
	QualityBest   AudioQuality = "best"
)

// UserSettings holds the user-tunable playback and appearance settings.
type UserSettings struct {
	AudioQuality  AudioQuality
	Gapless       bool
	Normalization bool
	Theme         string
	Notifications bool
}

// DefaultSettings returns the settings used before any configuration loads.
func DefaultSettings() UserSettings {
	return UserSettings{
		AudioQuality:  QualityHigh,
		Gapless:       true,
		Normalization: false,
		Theme:         "default",
		Notifications: true,
	}
}

// SettingsAction is the inner sum of settings intents.
type SettingsAction interface {
	AppAction
	settingsAction()
}

// ChangeSettings replaces the user settings wholesale.
type ChangeSettings struct {
	Settings UserSettings
}

func (ChangeSettings) appAction()      {}
func (ChangeSettings) settingsAction() {}

// SettingsEvent is the inner sum of settings change notifications.
type SettingsEvent interface {
	AppEvent
	settingsEvent()
}

// SettingsChanged reports that the user settings were replaced. Consumers
// that care about a particular knob compare against their last-seen value.
type SettingsChanged struct {
	Settings UserSettings
}

func (SettingsChanged) appEvent()      {}
func (SettingsChanged) settingsEvent() {}

// SettingsState is the settings substate.
type SettingsState struct {
	settings UserSettings
}

// NewSettingsState returns a settings substate holding the defaults.
func NewSettingsState() SettingsState {
	return SettingsState{settings: DefaultSettings()}
}

// Settings returns the current settings.
func (s *SettingsState) Settings() UserSettings {
	return s.settings
}

// UpdateWith applies a settings action.
func (s *SettingsState) UpdateWith(action SettingsAction) []SettingsEvent {
	switch a := action.(type) {
	case ChangeSettings:
		s.settings = a.Settings
		return []SettingsEvent{SettingsChanged{Settings: a.Settings}}
	default:
		return nil
	}
}
