// Package config provides configuration management for soundpack-combiner.
//
// This package handles:
//   - Default configuration values (category order, search patterns,
//     soundpack catalogue and the curated file list)
//   - Loading settings from YAML files and SOUNDPACK_* environment variables
//   - Saving settings as YAML
//   - Conversion to the option types of other packages
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Nine categories, eleven soundpacks, .ogg before .wav,
//	// 0.25 s mono silence at 44.1 kHz, ogg output at quality 9
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/soundpacks.yaml")
//	// A missing file yields the defaults
//
// Any list present in the file replaces the default list entirely, so a
// config may narrow the catalogue to a single soundpack.
//
// # Validation
//
//	if err := settings.Validate(); err != nil {
//	    // every problem, joined
//	}
//
// # Saving Settings
//
//	err := settings.Save("/path/to/soundpacks.yaml")
package config
