// export_test.go exports private functions for white-box testing.
package config

// SettingsFromLookup exposes settingsFromLookup to external tests.
var SettingsFromLookup = settingsFromLookup
