package settingsschema

func notificationsEnabled() *DependsOn {
	return dependsOnTrue("preferences.notifications.enabled")
}

// PersonalSettingsSchema схема пользовательских настроек
var PersonalSettingsSchema = SettingsSchema{
	ID:          "personal-settings",
	Title:       "Personal Settings",
	Description: "Manage your personal preferences and account settings",
	Tabs: []TabDescriptor{
		{
			ID:    "appearance",
			Title: "Appearance",
			Icon:  "Palette",
			Sections: []SectionDescriptor{
				{
					ID:          "appearance",
					Title:       "Appearance",
					Description: "Customize how the application looks",
					Fields: []FieldDescriptor{
						{
							ID:           "preferences.theme",
							Type:         FieldSelect,
							Label:        "Theme",
							Options:      themeOptions,
							DefaultValue: "system",
						},
						{
							ID:    "preferences.fontSize",
							Type:  FieldSelect,
							Label: "Font Size",
							Options: []FieldOption{
								{Label: "Small", Value: "small"},
								{Label: "Medium", Value: "medium"},
								{Label: "Large", Value: "large"},
							},
							DefaultValue: "medium",
						},
						{
							ID:           "preferences.highContrast",
							Type:         FieldSwitch,
							Label:        "High Contrast Mode",
							DefaultValue: false,
						},
						{
							ID:           "preferences.reducedMotion",
							Type:         FieldSwitch,
							Label:        "Reduced Motion",
							DefaultValue: false,
						},
					},
				},
			},
		},
		{
			ID:    "localization",
			Title: "Localization",
			Icon:  "Globe",
			Sections: []SectionDescriptor{
				{
					ID:          "localization",
					Title:       "Localization",
					Description: "Set your language and regional preferences",
					Fields: []FieldDescriptor{
						{
							ID:           "preferences.language",
							Type:         FieldSelect,
							Label:        "Language",
							Options:      languageOptions,
							DefaultValue: "en",
						},
						{
							ID:           "preferences.timezone",
							Type:         FieldSelect,
							Label:        "Timezone",
							Options:      timezoneOptions,
							DefaultValue: "UTC",
						},
						{
							ID:           "preferences.dateFormat",
							Type:         FieldSelect,
							Label:        "Date Format",
							Options:      dateFormatOptions,
							DefaultValue: "MM/DD/YYYY",
						},
						{
							ID:           "preferences.timeFormat",
							Type:         FieldSelect,
							Label:        "Time Format",
							Options:      timeFormatOptions,
							DefaultValue: "12hour",
						},
						{
							ID:    "preferences.firstDayOfWeek",
							Type:  FieldSelect,
							Label: "First Day of Week",
							Options: []FieldOption{
								{Label: "Sunday", Value: "sunday"},
								{Label: "Monday", Value: "monday"},
							},
							DefaultValue: "sunday",
						},
					},
				},
			},
		},
		{
			ID:    "notifications",
			Title: "Notifications",
			Icon:  "Bell",
			Sections: []SectionDescriptor{
				{
					ID:          "notification-preferences",
					Title:       "Notification Preferences",
					Description: "Control how and when you receive notifications",
					Fields: []FieldDescriptor{
						{
							ID:           "preferences.notifications.enabled",
							Type:         FieldSwitch,
							Label:        "Enable Notifications",
							DefaultValue: true,
						},
						{
							ID:           "preferences.notifications.email",
							Type:         FieldSwitch,
							Label:        "Email Notifications",
							DefaultValue: true,
							DependsOn:    notificationsEnabled(),
						},
						{
							ID:           "preferences.notifications.browser",
							Type:         FieldSwitch,
							Label:        "Browser Notifications",
							DefaultValue: true,
							DependsOn:    notificationsEnabled(),
						},
						{
							ID:           "preferences.notifications.mobile",
							Type:         FieldSwitch,
							Label:        "Mobile Notifications",
							DefaultValue: true,
							DependsOn:    notificationsEnabled(),
						},
					},
				},
				{
					ID:          "notification-types",
					Title:       "Notification Types",
					Description: "Choose which types of notifications you want to receive",
					Fields: []FieldDescriptor{
						{
							ID:           "preferences.notifications.mentions",
							Type:         FieldSwitch,
							Label:        "Mentions",
							DefaultValue: true,
							DependsOn:    notificationsEnabled(),
						},
						{
							ID:           "preferences.notifications.comments",
							Type:         FieldSwitch,
							Label:        "Comments",
							DefaultValue: true,
							DependsOn:    notificationsEnabled(),
						},
						{
							ID:           "preferences.notifications.updates",
							Type:         FieldSwitch,
							Label:        "System Updates",
							DefaultValue: false,
							DependsOn:    notificationsEnabled(),
						},
						{
							ID:           "preferences.notifications.marketing",
							Type:         FieldSwitch,
							Label:        "Marketing",
							DefaultValue: false,
							DependsOn:    notificationsEnabled(),
						},
					},
				},
				{
					ID:          "quiet-hours",
					Title:       "Quiet Hours",
					Description: "Set times when you don't want to be disturbed",
					Fields: []FieldDescriptor{
						{
							ID:           "preferences.notifications.quietHoursEnabled",
							Type:         FieldSwitch,
							Label:        "Enable Quiet Hours",
							DefaultValue: false,
							DependsOn:    notificationsEnabled(),
						},
						{
							ID:           "preferences.notifications.quietHoursStart",
							Type:         FieldTime,
							Label:        "Start Time",
							DefaultValue: "22:00",
							DependsOn:    dependsOnTrue("preferences.notifications.quietHoursEnabled"),
						},
						{
							ID:           "preferences.notifications.quietHoursEnd",
							Type:         FieldTime,
							Label:        "End Time",
							DefaultValue: "07:00",
							DependsOn:    dependsOnTrue("preferences.notifications.quietHoursEnabled"),
						},
					},
				},
			},
		},
	},
}
