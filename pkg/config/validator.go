package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ConfigValidator validates configuration with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll stops at the first error.
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateServer(); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}
	if err := v.validateDocument(); err != nil {
		return fmt.Errorf("document validation failed: %w", err)
	}
	return nil
}

func validate(cfg *Config) error {
	return NewValidator(cfg).ValidateAll()
}

func (v *ConfigValidator) validateServer() error {
	s := v.cfg.Server
	if s.HTTPPort == "" {
		return NewValidationError("server", "http_port", ErrMissingRequiredField)
	}
	port, err := strconv.Atoi(s.HTTPPort)
	if err != nil || port < 1 || port > 65535 {
		return NewValidationError("server", "http_port", fmt.Errorf("%w: %q is not a TCP port", ErrInvalidValue, s.HTTPPort))
	}
	if s.ReadTimeout < 0 {
		return NewValidationError("server", "read_timeout", fmt.Errorf("%w: must not be negative", ErrInvalidValue))
	}
	if s.WriteTimeout < 0 {
		return NewValidationError("server", "write_timeout", fmt.Errorf("%w: must not be negative", ErrInvalidValue))
	}
	if s.MaxBodyBytes <= 0 {
		return NewValidationError("server", "max_body_bytes", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateDocument() error {
	switch strings.ToLower(v.cfg.Document.Format) {
	case "docx", "text", "txt":
		return nil
	default:
		return NewValidationError("document", "format",
			fmt.Errorf("%w: %q (expected docx or text)", ErrInvalidValue, v.cfg.Document.Format))
	}
}
