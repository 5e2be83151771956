// Package config loads display settings from TOML or YAML files and
// watches them for changes.
//
//	s, err := config.Load("menu.toml")
//	if err != nil {
//		return err
//	}
//	if err := s.Validate(driver.Exists); err != nil {
//		return err
//	}
package config
