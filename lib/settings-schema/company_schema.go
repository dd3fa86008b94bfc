package settingsschema

var (
	languageOptions = []FieldOption{
		{Label: "English", Value: "en"},
		{Label: "Spanish", Value: "es"},
		{Label: "French", Value: "fr"},
		{Label: "German", Value: "de"},
		{Label: "Japanese", Value: "ja"},
		{Label: "Chinese", Value: "zh"},
	}
	timezoneOptions = []FieldOption{
		{Label: "UTC", Value: "UTC"},
		{Label: "Eastern Time (ET)", Value: "America/New_York"},
		{Label: "Central Time (CT)", Value: "America/Chicago"},
		{Label: "Mountain Time (MT)", Value: "America/Denver"},
		{Label: "Pacific Time (PT)", Value: "America/Los_Angeles"},
		{Label: "London (GMT)", Value: "Europe/London"},
		{Label: "Paris (CET)", Value: "Europe/Paris"},
		{Label: "Tokyo (JST)", Value: "Asia/Tokyo"},
	}
	themeOptions = []FieldOption{
		{Label: "Light", Value: "light"},
		{Label: "Dark", Value: "dark"},
		{Label: "System", Value: "system"},
	}
	dateFormatOptions = []FieldOption{
		{Label: "MM/DD/YYYY", Value: "MM/DD/YYYY"},
		{Label: "DD/MM/YYYY", Value: "DD/MM/YYYY"},
		{Label: "YYYY-MM-DD", Value: "YYYY-MM-DD"},
	}
	timeFormatOptions = []FieldOption{
		{Label: "12-hour (AM/PM)", Value: "12hour"},
		{Label: "24-hour", Value: "24hour"},
	}
	industryOptions = []FieldOption{
		{Label: "Technology", Value: "technology"},
		{Label: "Finance", Value: "finance"},
		{Label: "Healthcare", Value: "healthcare"},
		{Label: "Education", Value: "education"},
		{Label: "Retail", Value: "retail"},
		{Label: "Manufacturing", Value: "manufacturing"},
		{Label: "Other", Value: "other"},
	}
	companySizeOptions = []FieldOption{
		{Label: "1-10 employees", Value: "1-10"},
		{Label: "11-50 employees", Value: "11-50"},
		{Label: "51-200 employees", Value: "51-200"},
		{Label: "201-500 employees", Value: "201-500"},
		{Label: "501-1000 employees", Value: "501-1000"},
		{Label: "1001+ employees", Value: "1001+"},
	}
	securityLevelOptions = []FieldOption{
		{Label: "Low - Basic security measures", Value: "low"},
		{Label: "Medium - Standard security (recommended)", Value: "medium"},
		{Label: "High - Maximum security with additional verification", Value: "high"},
	}
	dataRetentionOptions = []FieldOption{
		{Label: "30 Days", Value: "30days"},
		{Label: "90 Days", Value: "90days"},
		{Label: "1 Year", Value: "1year"},
		{Label: "2 Years", Value: "2years"},
		{Label: "Forever", Value: "forever"},
	}
	backupFrequencyOptions = []FieldOption{
		{Label: "Daily", Value: "daily"},
		{Label: "Weekly", Value: "weekly"},
		{Label: "Monthly", Value: "monthly"},
	}
	emailDigestOptions = []FieldOption{
		{Label: "Never", Value: "never"},
		{Label: "Daily", Value: "daily"},
		{Label: "Weekly", Value: "weekly"},
		{Label: "Monthly", Value: "monthly"},
	}
	crmProviderOptions = []FieldOption{
		{Label: "None", Value: "none"},
		{Label: "Salesforce", Value: "salesforce"},
		{Label: "HubSpot", Value: "hubspot"},
		{Label: "Zoho", Value: "zoho"},
		{Label: "Other", Value: "other"},
	}
)

func dependsOnTrue(field string) *DependsOn {
	return &DependsOn{Field: field, Value: true}
}

// CompanySettingsSchema схема документа настроек компании
var CompanySettingsSchema = SettingsSchema{
	ID:          "company-settings",
	Title:       "Company Settings",
	Description: "Manage your company profile and configuration settings",
	Tabs: []TabDescriptor{
		{
			ID:    "profile",
			Title: "Profile",
			Icon:  "Building",
			Sections: []SectionDescriptor{
				{
					ID:          "company-info",
					Title:       "Company Information",
					Description: "Basic information about your company",
					Fields: []FieldDescriptor{
						{
							ID:           "profile.name",
							Type:         FieldText,
							Label:        "Company Name",
							Description:  "This is your company's official name.",
							Placeholder:  "Acme Inc.",
							DefaultValue: "Acme Corporation",
							Required:     true,
							Validation:   FieldValidation{MinLength: intPtr(2)},
						},
						{
							ID:           "profile.description",
							Type:         FieldTextarea,
							Label:        "Company Description",
							Description:  "A brief description of your company and what you do.",
							Placeholder:  "Tell us about your company...",
							DefaultValue: "Leading provider of innovative solutions",
						},
						{
							ID:          "profile.logo",
							Type:        FieldFile,
							Label:       "Company Logo",
							Description: "Upload a square logo in PNG or JPG format, ideally 512x512px.",
							Accept:      "image/*",
							MaxSize:     5 * 1024 * 1024,
						},
					},
				},
				{
					ID:    "company-details",
					Title: "Company Details",
					Fields: []FieldDescriptor{
						{
							ID:           "profile.industry",
							Type:         FieldSelect,
							Label:        "Industry",
							Description:  "Select the industry your company operates in.",
							Options:      industryOptions,
							DefaultValue: "technology",
						},
						{
							ID:           "profile.foundedYear",
							Type:         FieldText,
							Label:        "Founded Year",
							Description:  "The year your company was founded.",
							Placeholder:  "2010",
							DefaultValue: "2010",
							Validation:   FieldValidation{Pattern: `^\d{4}$`},
						},
						{
							ID:           "profile.website",
							Type:         FieldText,
							Label:        "Website",
							Description:  "Your company's website URL.",
							Placeholder:  "https://example.com",
							DefaultValue: "https://example.com",
							Validation:   FieldValidation{Pattern: `^(https?:\/\/)?([\da-z\.-]+)\.([a-z\.]{2,6})([\/\w \.-]*)*\/?$`},
						},
						{
							ID:           "profile.companySize",
							Type:         FieldSelect,
							Label:        "Company Size",
							Description:  "The approximate number of employees.",
							Options:      companySizeOptions,
							DefaultValue: "11-50",
						},
					},
				},
				{
					ID:    "brand-colors",
					Title: "Brand Colors",
					Fields: []FieldDescriptor{
						{
							ID:           "profile.primaryColor",
							Type:         FieldColor,
							Label:        "Primary Color",
							Description:  "Your brand's primary color (hex code).",
							DefaultValue: "#000000",
						},
						{
							ID:           "profile.secondaryColor",
							Type:         FieldColor,
							Label:        "Secondary Color",
							Description:  "Your brand's secondary color (hex code).",
							DefaultValue: "#ffffff",
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
					ID:          "notification-settings",
					Title:       "Notification Settings",
					Description: "Configure how and when you receive notifications",
					Fields: []FieldDescriptor{
						{
							ID:           "notifications.enableNotifications",
							Type:         FieldSwitch,
							Label:        "Email Notifications",
							Description:  "Enable or disable all email notifications.",
							DefaultValue: false,
						},
						{
							ID:           "notifications.emailDigestFrequency",
							Type:         FieldSelect,
							Label:        "Email Digest Frequency",
							Description:  "How often you want to receive email digests.",
							Options:      emailDigestOptions,
							DefaultValue: "weekly",
							DependsOn:    dependsOnTrue("notifications.enableNotifications"),
						},
					},
				},
				{
					ID:          "notification-types",
					Title:       "Notification Types",
					Description: "Select which types of notifications you want to receive",
					Fields: []FieldDescriptor{
						{
							ID:           "notifications.notifyOnUserSignup",
							Type:         FieldCheckbox,
							Label:        "User Signup Notifications",
							Description:  "Receive notifications when new users sign up.",
							DefaultValue: true,
							DependsOn:    dependsOnTrue("notifications.enableNotifications"),
						},
						{
							ID:           "notifications.notifyOnPaymentReceived",
							Type:         FieldCheckbox,
							Label:        "Payment Notifications",
							Description:  "Receive notifications when payments are processed.",
							DefaultValue: true,
							DependsOn:    dependsOnTrue("notifications.enableNotifications"),
						},
						{
							ID:           "notifications.notifyOnSystemUpdates",
							Type:         FieldCheckbox,
							Label:        "System Update Notifications",
							Description:  "Receive notifications about system updates and maintenance.",
							DefaultValue: true,
							DependsOn:    dependsOnTrue("notifications.enableNotifications"),
						},
						{
							ID:           "notifications.notifyOnSecurityAlerts",
							Type:         FieldCheckbox,
							Label:        "Security Alert Notifications",
							Description:  "Receive notifications about security-related events.",
							DefaultValue: true,
							DependsOn:    dependsOnTrue("notifications.enableNotifications"),
						},
						{
							ID:           "notifications.marketingEmails",
							Type:         FieldSwitch,
							Label:        "Marketing Emails",
							Description:  "Receive promotional emails and product updates.",
							DefaultValue: false,
						},
					},
				},
			},
		},
		{
			ID:    "security",
			Title: "Security",
			Icon:  "Shield",
			Sections: []SectionDescriptor{
				{
					ID:          "authentication",
					Title:       "Authentication",
					Description: "Password and session policies",
					Fields: []FieldDescriptor{
						{
							ID:           "security.enableTwoFactorAuth",
							Type:         FieldSwitch,
							Label:        "Two-Factor Authentication",
							Description:  "Require two-factor authentication for all users.",
							DefaultValue: false,
						},
						{
							ID:           "security.passwordExpiryDays",
							Type:         FieldNumber,
							Label:        "Password Expiry (days)",
							Description:  "Number of days before passwords expire. Use 0 to disable.",
							DefaultValue: 90,
							Validation:   FieldValidation{Min: floatPtr(0), Max: floatPtr(365)},
						},
						{
							ID:           "security.sessionTimeoutMinutes",
							Type:         FieldNumber,
							Label:        "Session Timeout (minutes)",
							Description:  "Idle time before a user is signed out.",
							DefaultValue: 60,
							Validation:   FieldValidation{Min: floatPtr(5), Max: floatPtr(1440)},
						},
						{
							ID:           "security.failedLoginAttempts",
							Type:         FieldSlider,
							Label:        "Failed Login Attempts",
							Description:  "Attempts allowed before the account is locked.",
							DefaultValue: 5,
							Validation:   FieldValidation{Min: floatPtr(1), Max: floatPtr(10)},
							Step:         floatPtr(1),
						},
						{
							ID:           "security.securityLevel",
							Type:         FieldRadio,
							Label:        "Security Level",
							Description:  "Overall security posture for your organization.",
							Options:      securityLevelOptions,
							DefaultValue: "medium",
						},
					},
				},
				{
					ID:          "access-restrictions",
					Title:       "Access Restrictions",
					Description: "Limit where users can sign in from",
					Fields: []FieldDescriptor{
						{
							ID:           "security.ipRestriction",
							Type:         FieldSwitch,
							Label:        "IP Restriction",
							Description:  "Only allow access from specific IP addresses.",
							DefaultValue: false,
						},
						{
							ID:          "security.allowedIpAddresses",
							Type:        FieldTextarea,
							Label:       "Allowed IP Addresses",
							Description: "One IP address or CIDR range per line.",
							Placeholder: "192.168.1.1\n10.0.0.0/24",
							Required:    true,
							DependsOn:   dependsOnTrue("security.ipRestriction"),
						},
					},
				},
			},
		},
		{
			ID:    "data",
			Title: "Data",
			Icon:  "Database",
			Sections: []SectionDescriptor{
				{
					ID:          "data-privacy",
					Title:       "Data Privacy",
					Description: "Control how your data is shared and protected",
					Fields: []FieldDescriptor{
						{
							ID:           "data.enableDataSharing",
							Type:         FieldSwitch,
							Label:        "Data Sharing",
							Description:  "Share anonymized usage data to improve the product.",
							DefaultValue: false,
						},
						{
							ID:           "data.enableAnalytics",
							Type:         FieldSwitch,
							Label:        "Analytics",
							Description:  "Collect analytics about how your team uses the system.",
							DefaultValue: true,
						},
						{
							ID:           "data.encryptData",
							Type:         FieldSwitch,
							Label:        "Encrypt Data",
							Description:  "Encrypt stored data at rest.",
							DefaultValue: true,
						},
						{
							ID:           "data.anonymizeUserData",
							Type:         FieldSwitch,
							Label:        "Anonymize User Data",
							Description:  "Remove personal information from analytics data.",
							DefaultValue: false,
						},
						{
							ID:           "data.dataRetentionPeriod",
							Type:         FieldSelect,
							Label:        "Data Retention Period",
							Description:  "How long data is kept before it is deleted.",
							Options:      dataRetentionOptions,
							DefaultValue: "1year",
						},
					},
				},
				{
					ID:          "backups",
					Title:       "Backups",
					Description: "Automatic backup schedule",
					Fields: []FieldDescriptor{
						{
							ID:           "data.enableAutoBackup",
							Type:         FieldSwitch,
							Label:        "Automatic Backups",
							Description:  "Back up your data on a schedule.",
							DefaultValue: false,
						},
						{
							ID:           "data.backupFrequency",
							Type:         FieldSelect,
							Label:        "Backup Frequency",
							Description:  "How often backups are made.",
							Options:      backupFrequencyOptions,
							DefaultValue: "daily",
							DependsOn:    dependsOnTrue("data.enableAutoBackup"),
						},
						{
							ID:           "data.backupTime",
							Type:         FieldTime,
							Label:        "Backup Time",
							Description:  "Time of day backups start (UTC).",
							DefaultValue: "00:00",
							DependsOn:    dependsOnTrue("data.enableAutoBackup"),
						},
					},
				},
			},
		},
		{
			ID:    "integrations",
			Title: "Integrations",
			Icon:  "Plug",
			Sections: []SectionDescriptor{
				{
					ID:    "slack",
					Title: "Slack",
					Fields: []FieldDescriptor{
						{
							ID:           "integrations.enableSlackIntegration",
							Type:         FieldSwitch,
							Label:        "Slack Integration",
							Description:  "Post notifications to a Slack channel.",
							DefaultValue: false,
						},
						{
							ID:          "integrations.slackWebhookUrl",
							Type:        FieldText,
							Label:       "Slack Webhook URL",
							Placeholder: "https://hooks.slack.com/services/...",
							Required:    true,
							Validation:  FieldValidation{Pattern: `^https?://\S+$`},
							DependsOn:   dependsOnTrue("integrations.enableSlackIntegration"),
						},
					},
				},
				{
					ID:    "analytics",
					Title: "Analytics & Automation",
					Fields: []FieldDescriptor{
						{
							ID:           "integrations.enableGoogleAnalytics",
							Type:         FieldSwitch,
							Label:        "Google Analytics",
							DefaultValue: false,
						},
						{
							ID:          "integrations.googleAnalyticsId",
							Type:        FieldText,
							Label:       "Google Analytics ID",
							Placeholder: "G-XXXXXXXXXX",
							DependsOn:   dependsOnTrue("integrations.enableGoogleAnalytics"),
						},
						{
							ID:           "integrations.enableZapier",
							Type:         FieldSwitch,
							Label:        "Zapier",
							DefaultValue: false,
						},
					},
				},
				{
					ID:    "crm",
					Title: "CRM",
					Fields: []FieldDescriptor{
						{
							ID:           "integrations.enableCRM",
							Type:         FieldSwitch,
							Label:        "CRM Integration",
							DefaultValue: false,
						},
						{
							ID:           "integrations.crmProvider",
							Type:         FieldSelect,
							Label:        "CRM Provider",
							Options:      crmProviderOptions,
							DefaultValue: "none",
							DependsOn:    dependsOnTrue("integrations.enableCRM"),
						},
						{
							ID:        "integrations.crmApiKey",
							Type:      FieldPassword,
							Label:     "CRM API Key",
							Required:  true,
							DependsOn: &DependsOn{Field: "integrations.crmProvider", Value: "none", Operator: OperatorNotEquals},
						},
					},
				},
				{
					ID:    "social-login",
					Title: "Social Login",
					Fields: []FieldDescriptor{
						{
							ID:           "integrations.enableSocialLogin",
							Type:         FieldSwitch,
							Label:        "Social Login",
							DefaultValue: false,
						},
						{
							ID:           "integrations.enabledSocialProviders.google",
							Type:         FieldCheckbox,
							Label:        "Google",
							DefaultValue: false,
							DependsOn:    dependsOnTrue("integrations.enableSocialLogin"),
						},
						{
							ID:           "integrations.enabledSocialProviders.facebook",
							Type:         FieldCheckbox,
							Label:        "Facebook",
							DefaultValue: false,
							DependsOn:    dependsOnTrue("integrations.enableSocialLogin"),
						},
						{
							ID:           "integrations.enabledSocialProviders.twitter",
							Type:         FieldCheckbox,
							Label:        "Twitter",
							DefaultValue: false,
							DependsOn:    dependsOnTrue("integrations.enableSocialLogin"),
						},
						{
							ID:           "integrations.enabledSocialProviders.github",
							Type:         FieldCheckbox,
							Label:        "GitHub",
							DefaultValue: false,
							DependsOn:    dependsOnTrue("integrations.enableSocialLogin"),
						},
					},
				},
			},
		},
		{
			ID:    "display",
			Title: "Display",
			Icon:  "Monitor",
			Sections: []SectionDescriptor{
				{
					ID:          "display-settings",
					Title:       "Display Settings",
					Description: "Customize the appearance and behavior of your interface",
					Fields: []FieldDescriptor{
						{
							ID:           "display.defaultTheme",
							Type:         FieldSelect,
							Label:        "Default Theme",
							Description:  "Choose the default theme for your interface.",
							Options:      themeOptions,
							DefaultValue: "system",
						},
						{
							ID:           "display.enableCustomBranding",
							Type:         FieldSwitch,
							Label:        "Custom Branding",
							Description:  "Apply your company's branding to the interface.",
							DefaultValue: false,
						},
						{
							ID:           "display.dateFormat",
							Type:         FieldSelect,
							Label:        "Date Format",
							Description:  "Choose how dates are displayed.",
							Options:      dateFormatOptions,
							DefaultValue: "MM/DD/YYYY",
						},
						{
							ID:           "display.timeFormat",
							Type:         FieldSelect,
							Label:        "Time Format",
							Description:  "Choose how times are displayed.",
							Options:      timeFormatOptions,
							DefaultValue: "12hour",
						},
						{
							ID:           "display.defaultLanguage",
							Type:         FieldSelect,
							Label:        "Default Language",
							Description:  "Choose the default language.",
							Options:      languageOptions,
							DefaultValue: "en",
						},
						{
							ID:           "display.defaultTimezone",
							Type:         FieldSelect,
							Label:        "Default Timezone",
							Description:  "Choose the default timezone.",
							Options:      timezoneOptions,
							DefaultValue: "UTC",
						},
						{
							ID:           "display.showWelcomeMessage",
							Type:         FieldSwitch,
							Label:        "Welcome Message",
							Description:  "Show welcome message for new users.",
							DefaultValue: true,
						},
						{
							ID:           "display.compactMode",
							Type:         FieldSwitch,
							Label:        "Compact Mode",
							Description:  "Use a more compact UI with less whitespace.",
							DefaultValue: false,
						},
					},
				},
			},
		},
	},
}
