package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/handiism/soundpack-combiner/internal/audio"
	"github.com/handiism/soundpack-combiner/internal/model"
)

// EnvPrefix is the prefix of environment variables overriding settings,
// e.g. SOUNDPACK_OUTPUT_DIR.
const EnvPrefix = "SOUNDPACK"

// Settings holds all configuration options.
type Settings struct {
	// Directories
	SoundDir  string `mapstructure:"sound_dir" yaml:"sound_dir"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir" validate:"required"`

	// External tools
	FFmpegPath  string `mapstructure:"ffmpeg_path" yaml:"ffmpeg_path" validate:"required"`
	FFprobePath string `mapstructure:"ffprobe_path" yaml:"ffprobe_path" validate:"required"`

	// Output
	OutputFormat string `mapstructure:"output_format" yaml:"output_format" validate:"required,alphanum,lowercase"` // ogg, mp3, wav
	Quality      string `mapstructure:"quality" yaml:"quality" validate:"required"`
	ProbeOutput  bool   `mapstructure:"probe_output" yaml:"probe_output"`

	// Silence spacer
	SilenceDuration      float64 `mapstructure:"silence_duration" yaml:"silence_duration" validate:"gt=0"` // seconds
	SilenceSampleRate    int     `mapstructure:"silence_sample_rate" yaml:"silence_sample_rate" validate:"gt=0"`
	SilenceChannelLayout string  `mapstructure:"silence_channel_layout" yaml:"silence_channel_layout" validate:"required"`

	// Resolution rules
	Extensions []string         `mapstructure:"extensions" yaml:"extensions" validate:"min=1,dive,startswith=.,min=2"`
	Categories []model.Category `mapstructure:"categories" yaml:"categories" validate:"min=1"`

	// Catalogue mode
	Soundpacks []string `mapstructure:"soundpacks" yaml:"soundpacks"`

	// Curated mode
	CustomFiles      []string `mapstructure:"custom_files" yaml:"custom_files"`
	CustomOutputName string   `mapstructure:"custom_output_name" yaml:"custom_output_name"`

	// Tag settings (mp3 output only)
	ModifyTags      bool `mapstructure:"modify_tags" yaml:"modify_tags"`
	EmbedCoverArt   bool `mapstructure:"embed_cover_art" yaml:"embed_cover_art"`
	CoverArtMaxSize int  `mapstructure:"cover_art_max_size" yaml:"cover_art_max_size" validate:"gte=0"`
}

// DefaultCategories returns the category order and search patterns of the
// combined tracks.
func DefaultCategories() []model.Category {
	return []model.Category{
		{Name: "9mm shoot", Patterns: []string{"fire_gun/handguns", "fire_gun", "guns", "firearms"}},
		{Name: "male hurt", Patterns: []string{"deal_damage/hurt_m", "player/hurt_m", "hurt_m", "hurt"}},
		{Name: "window shatter", Patterns: []string{"smash_success/window", "smash/window", "smash_success", "smash"}},
		{Name: "footstep", Patterns: []string{"plmove", "player/move", "steps", "walk", "env/walk"}},
		{Name: "baton hit", Patterns: []string{"melee_hit_flesh/small_bash", "melee_hit_flesh", "melee"}},
		{Name: "female hurt", Patterns: []string{"deal_damage/hurt_f", "player/hurt_f", "hurt_f"}},
		{Name: "car engine start", Patterns: []string{"engine_start"}},
		{Name: "drive", Patterns: []string{"engine_working_external", "engine_working_internal", "vehicle"}},
		{Name: "explosion", Patterns: []string{"explosion", "explosions"}},
	}
}

// DefaultSoundpacks returns the soundpack catalogue processed by a run.
func DefaultSoundpacks() []string {
	return []string{
		"RRFSounds",
		"Otopack",
		"ChestOldTimey",
		"ChestHoleCC",
		"ChestHole",
		"CDDA-Soundpack",
		"@'s soundpack",
		"BeepBoopBip",
		"CO.AG-music-only",
		"CC-Sounds-sfx-only",
		"CC-Sounds",
	}
}

// DefaultCustomFiles returns the hand-picked files of the curated track, one
// per category in DefaultCategories order.
func DefaultCustomFiles() []string {
	backup := filepath.Join("Soundpack backup", "AtsSoundpack")
	ats := filepath.Join("userdata", "sound", "@'s soundpack")
	return []string{
		filepath.Join(backup, "shoot_9mm.ogg"),
		filepath.Join(backup, "hurt_male.ogg"),
		filepath.Join(backup, "break_window.ogg"),
		filepath.Join(backup, "walk.ogg"),
		filepath.Join(backup, "hit_baton.ogg"),
		filepath.Join(backup, "hurt_female.ogg"),
		filepath.Join(ats, "vehicle", "engine", "engine_start_combustion_1.wav"),
		filepath.Join(ats, "vehicle", "engine", "engine_stall_1.wav"),
		filepath.Join(ats, "env", "explosions", "explosion_large_3.ogg"),
	}
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		SoundDir:  filepath.Join("userdata", "sound"),
		OutputDir: filepath.Join("materials", "sound_samples"),

		FFmpegPath:  audio.DefaultFFmpegCommand,
		FFprobePath: audio.DefaultFFprobeCommand,

		OutputFormat: "ogg",
		Quality:      audio.DefaultQuality,
		ProbeOutput:  false,

		SilenceDuration:      0.25,
		SilenceSampleRate:    44100,
		SilenceChannelLayout: "mono",

		Extensions: []string{".ogg", ".wav"},
		Categories: DefaultCategories(),

		Soundpacks: DefaultSoundpacks(),

		CustomFiles:      DefaultCustomFiles(),
		CustomOutputName: "@'s soundpack",

		ModifyTags:      true,
		EmbedCoverArt:   true,
		CoverArtMaxSize: 500,
	}
}

// Load reads settings from a YAML file.
//
// Values missing from the file keep their defaults and SOUNDPACK_* environment
// variables override scalar values. An empty path or a missing file yields the
// defaults (plus environment overrides).
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultSettings())

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &settings, nil
}

// setDefaults registers every field of s as a viper default so that
// environment variables can override them and lists are replaced, not merged.
func setDefaults(v *viper.Viper, s *Settings) {
	v.SetDefault("sound_dir", s.SoundDir)
	v.SetDefault("output_dir", s.OutputDir)
	v.SetDefault("ffmpeg_path", s.FFmpegPath)
	v.SetDefault("ffprobe_path", s.FFprobePath)
	v.SetDefault("output_format", s.OutputFormat)
	v.SetDefault("quality", s.Quality)
	v.SetDefault("probe_output", s.ProbeOutput)
	v.SetDefault("silence_duration", s.SilenceDuration)
	v.SetDefault("silence_sample_rate", s.SilenceSampleRate)
	v.SetDefault("silence_channel_layout", s.SilenceChannelLayout)
	v.SetDefault("extensions", s.Extensions)
	v.SetDefault("categories", s.Categories)
	v.SetDefault("soundpacks", s.Soundpacks)
	v.SetDefault("custom_files", s.CustomFiles)
	v.SetDefault("custom_output_name", s.CustomOutputName)
	v.SetDefault("modify_tags", s.ModifyTags)
	v.SetDefault("embed_cover_art", s.EmbedCoverArt)
	v.SetDefault("cover_art_max_size", s.CoverArtMaxSize)
}

// Save writes settings to a YAML file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

var validate = newValidator()

// newValidator returns a validator reporting fields by their YAML key.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate reports every problem with the settings at once.
func (s *Settings) Validate() error {
	var errs []error

	if err := validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, e := range fieldErrs {
			errs = append(errs, fmt.Errorf("%s %s", e.Field(), friendlyMessage(e)))
		}
	}

	seen := make(map[string]bool)
	for i, cat := range s.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			errs = append(errs, fmt.Errorf("category %d: name is required", i))
			continue
		}
		if seen[cat.Name] {
			errs = append(errs, fmt.Errorf("category %d (%s): duplicate name", i, cat.Name))
		}
		seen[cat.Name] = true
	}

	return errors.Join(errs...)
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "alphanum", "lowercase":
		return fmt.Sprintf("%q must be a bare lowercase extension like ogg or mp3", e.Value())
	case "startswith":
		return fmt.Sprintf("%q must start with %q", e.Value(), e.Param())
	case "min":
		return "must have at least " + e.Param() + " entries"
	case "gt":
		return fmt.Sprintf("must be greater than %s, got %v", e.Param(), e.Value())
	case "gte":
		return "must be greater than or equal to " + e.Param()
	default:
		return "is invalid"
	}
}

// SilenceSpec converts settings to an audio.SilenceSpec.
func (s *Settings) SilenceSpec() audio.SilenceSpec {
	return audio.SilenceSpec{
		SampleRate:    s.SilenceSampleRate,
		ChannelLayout: s.SilenceChannelLayout,
		Duration:      time.Duration(s.SilenceDuration * float64(time.Second)),
	}
}

// TagConfig converts settings to an audio.TagConfig.
func (s *Settings) TagConfig() *audio.TagConfig {
	cfg := audio.DefaultTagConfig()
	cfg.ModifyTags = s.ModifyTags
	return cfg
}

// Catalogue returns the configured soundpacks rooted at SoundDir.
func (s *Settings) Catalogue() []model.Soundpack {
	packs := make([]model.Soundpack, len(s.Soundpacks))
	for i, name := range s.Soundpacks {
		packs[i] = model.NewSoundpack(s.SoundDir, name)
	}
	return packs
}

// OutputPath returns the combined track path for a soundpack name.
func (s *Settings) OutputPath(name string) string {
	return filepath.Join(s.OutputDir, model.OutputFileName(name, s.OutputFormat))
}
