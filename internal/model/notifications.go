// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "fmt"

// EmailPref names one email notification flag.
type EmailPref string

const (
	EmailBatchCreated   EmailPref = "batch_created"
	EmailBatchProcessed EmailPref = "batch_processed"
	EmailBatchFailed    EmailPref = "batch_failed"
	EmailWeeklySummary  EmailPref = "weekly_summary"
)

// EmailPrefs lists the email flags in display order.
var EmailPrefs = []EmailPref{EmailBatchCreated, EmailBatchProcessed, EmailBatchFailed, EmailWeeklySummary}

// PushPref names one push notification flag.
type PushPref string

const (
	PushStatusChanges  PushPref = "status_changes"
	PushCriticalAlerts PushPref = "critical_alerts"
)

// PushPrefs lists the push flags in display order.
var PushPrefs = []PushPref{PushStatusChanges, PushCriticalAlerts}

// Frequency is the email delivery frequency.
type Frequency string

const (
	FrequencyImmediate Frequency = "immediate"
	FrequencyHourly    Frequency = "hourly"
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
)

// Frequencies lists the selectable frequencies in display order.
var Frequencies = []Frequency{FrequencyImmediate, FrequencyHourly, FrequencyDaily, FrequencyWeekly}

// Valid reports whether f is one of Frequencies.
func (f Frequency) Valid() bool {
	for _, v := range Frequencies {
		if v == f {
			return true
		}
	}
	return false
}

// QuietHours is the quiet hours schedule.
type QuietHours string

const (
	QuietHoursNone   QuietHours = "none"
	QuietHoursNight  QuietHours = "night" // 10PM - 6AM
	QuietHoursCustom QuietHours = "custom"
)

// QuietHoursOptions lists the selectable schedules in display order.
var QuietHoursOptions = []QuietHours{QuietHoursNone, QuietHoursNight, QuietHoursCustom}

// Valid reports whether q is one of QuietHoursOptions.
func (q QuietHours) Valid() bool {
	for _, v := range QuietHoursOptions {
		if v == q {
			return true
		}
	}
	return false
}

// NotificationPreferences holds independent flags and the two delivery
// selectors. The mapstructure keys double as form field ids.
type NotificationPreferences struct {
	BatchCreated   bool       `mapstructure:"batch_created"`   // email
	BatchProcessed bool       `mapstructure:"batch_processed"` // email
	BatchFailed    bool       `mapstructure:"batch_failed"`    // email
	WeeklySummary  bool       `mapstructure:"weekly_summary"`  // email
	StatusChanges  bool       `mapstructure:"status_changes"`  // push
	CriticalAlerts bool       `mapstructure:"critical_alerts"` // push
	Frequency      Frequency  `mapstructure:"frequency"`
	QuietHours     QuietHours `mapstructure:"quiet_hours"`
}

// DefaultNotificationPreferences returns every flag off, immediate delivery
// and no quiet hours.
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		Frequency:  FrequencyImmediate,
		QuietHours: QuietHoursNone,
	}
}

func (p *NotificationPreferences) emailFlag(pref EmailPref) (*bool, error) {
	switch pref {
	case EmailBatchCreated:
		return &p.BatchCreated, nil
	case EmailBatchProcessed:
		return &p.BatchProcessed, nil
	case EmailBatchFailed:
		return &p.BatchFailed, nil
	case EmailWeeklySummary:
		return &p.WeeklySummary, nil
	}
	return nil, fmt.Errorf("%w: email preference %q", ErrInvalidOption, pref)
}

func (p *NotificationPreferences) pushFlag(pref PushPref) (*bool, error) {
	switch pref {
	case PushStatusChanges:
		return &p.StatusChanges, nil
	case PushCriticalAlerts:
		return &p.CriticalAlerts, nil
	}
	return nil, fmt.Errorf("%w: push preference %q", ErrInvalidOption, pref)
}

// Email returns the value of an email flag.
func (p NotificationPreferences) Email(pref EmailPref) (bool, error) {
	flag, err := p.emailFlag(pref)
	if err != nil {
		return false, err
	}
	return *flag, nil
}

// SetEmail sets one email flag and nothing else.
func (p *NotificationPreferences) SetEmail(pref EmailPref, value bool) error {
	flag, err := p.emailFlag(pref)
	if err != nil {
		return err
	}
	*flag = value
	return nil
}

// Push returns the value of a push flag.
func (p NotificationPreferences) Push(pref PushPref) (bool, error) {
	flag, err := p.pushFlag(pref)
	if err != nil {
		return false, err
	}
	return *flag, nil
}

// SetPush sets one push flag and nothing else.
func (p *NotificationPreferences) SetPush(pref PushPref, value bool) error {
	flag, err := p.pushFlag(pref)
	if err != nil {
		return err
	}
	*flag = value
	return nil
}
