// Package config loads TOML and YAML configuration files for the strutil
// command.
//
// Values are read with dot-notation keys ("log.level", "markers.true_marker").
// When an environment prefix is set, a variable named PREFIX_SECTION_KEY
// overrides the file value, so STRUTIL_LOG_LEVEL=debug wins over
// [log] level = "warn".
//
//	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
//	if err != nil {
//		return err
//	}
//	separator := cfg.GetString("case.separator", "_")
//
// The helpers in utils/stringx never read configuration; only the command
// line front end does.
package config
