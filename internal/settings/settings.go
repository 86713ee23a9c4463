package settings

import (
	"errors"
	"fmt"
)

const (
	timerSettingsKey  = "timer-settings"
	appSettingsKey    = "app-settings"
	currentUserKey    = "current-user"
	currentWorkoutKey = "current-workout"

	// longest rest, warmup or cooldown accepted, in seconds
	maxTimerSeconds = 3 * 60 * 60
)

var ErrInvalidSettings = errors.New("invalid settings")

// TimerSettings holds the timer defaults, in seconds.
type TimerSettings struct {
	RestTime         int  `json:"restTime"`
	WarmupTime       int  `json:"warmupTime"`
	CooldownTime     int  `json:"cooldownTime"`
	SoundEnabled     bool `json:"soundEnabled"`
	VibrationEnabled bool `json:"vibrationEnabled"`
}

func DefaultTimerSettings() TimerSettings {
	return TimerSettings{
		RestTime:         30,
		WarmupTime:       300,
		CooldownTime:     300,
		SoundEnabled:     true,
		VibrationEnabled: true,
	}
}

func (s TimerSettings) Validate() error {
	for name, v := range map[string]int{
		"restTime":     s.RestTime,
		"warmupTime":   s.WarmupTime,
		"cooldownTime": s.CooldownTime,
	} {
		if v < 0 || v > maxTimerSeconds {
			return fmt.Errorf("%w: %s out of range: %d", ErrInvalidSettings, name, v)
		}
	}
	return nil
}

// TimerSettingsPatch carries the fields a caller sets; nil fields keep the default.
type TimerSettingsPatch struct {
	RestTime         *int  `json:"restTime"`
	WarmupTime       *int  `json:"warmupTime"`
	CooldownTime     *int  `json:"cooldownTime"`
	SoundEnabled     *bool `json:"soundEnabled"`
	VibrationEnabled *bool `json:"vibrationEnabled"`
}

func (p TimerSettingsPatch) Apply(base TimerSettings) TimerSettings {
	if p.RestTime != nil {
		base.RestTime = *p.RestTime
	}
	if p.WarmupTime != nil {
		base.WarmupTime = *p.WarmupTime
	}
	if p.CooldownTime != nil {
		base.CooldownTime = *p.CooldownTime
	}
	if p.SoundEnabled != nil {
		base.SoundEnabled = *p.SoundEnabled
	}
	if p.VibrationEnabled != nil {
		base.VibrationEnabled = *p.VibrationEnabled
	}
	return base
}

type AppSettings struct {
	Theme         string `json:"theme"`
	Animations    bool   `json:"animations"`
	Notifications bool   `json:"notifications"`
	AutoRest      bool   `json:"autoRest"`
}

func DefaultAppSettings() AppSettings {
	return AppSettings{
		Theme:         "dark",
		Animations:    true,
		Notifications: true,
		AutoRest:      true,
	}
}

func (s AppSettings) Validate() error {
	if s.Theme == "" {
		return fmt.Errorf("%w: empty theme", ErrInvalidSettings)
	}
	return nil
}

type AppSettingsPatch struct {
	Theme         *string `json:"theme"`
	Animations    *bool   `json:"animations"`
	Notifications *bool   `json:"notifications"`
	AutoRest      *bool   `json:"autoRest"`
}

func (p AppSettingsPatch) Apply(base AppSettings) AppSettings {
	if p.Theme != nil {
		base.Theme = *p.Theme
	}
	if p.Animations != nil {
		base.Animations = *p.Animations
	}
	if p.Notifications != nil {
		base.Notifications = *p.Notifications
	}
	if p.AutoRest != nil {
		base.AutoRest = *p.AutoRest
	}
	return base
}

// Current is the selected user and workout of this install.
type Current struct {
	User    string `json:"user"`
	Workout string `json:"workout"`
}

// CurrentPatch sets only the non-nil fields; an empty string clears the value.
type CurrentPatch struct {
	User    *string `json:"user"`
	Workout *string `json:"workout"`
}
