// File: validation.go
// Title: Configuration Validation Implementation
// Description: Implements rule based validation of configuration values:
//              presence, type, numeric bounds and allowed values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2025-10-18 v0.2.0: Single coded error result, OneOf rule, env aware

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/polytope/foundation/core/error"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool     // Whether the field is required
	Type     string   // Expected type: "string", "int", "bool", "duration"
	Min      *int     // Minimum value for int fields
	Max      *int     // Maximum value for int fields
	OneOf    []string // Allowed values for string fields, compared case-insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// IntPtr is a helper for ValidationRule bounds
func IntPtr(n int) *int { return &n }

// Validate checks every rule. All violations are collected into one
// INVALID_CONFIG error whose "violations" detail lists them by key order.
func (c *Config) Validate(rules ValidationRules) error {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var violations []string
	for _, key := range keys {
		if msg := c.validateField(key, rules[key]); msg != "" {
			violations = append(violations, msg)
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return mdwerror.Newf("invalid configuration: %s", strings.Join(violations, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("violations", violations)
}

func (c *Config) validateField(key string, rule ValidationRule) string {
	if !c.Has(key) {
		if rule.Required {
			return fmt.Sprintf("required field '%s' is missing", key)
		}
		return ""
	}

	switch rule.Type {
	case "int":
		n, ok := c.rawInt(key)
		if !ok {
			return fmt.Sprintf("field '%s' must be an integer", key)
		}
		if rule.Min != nil && n < *rule.Min {
			return fmt.Sprintf("field '%s' must be >= %d, got %d", key, *rule.Min, n)
		}
		if rule.Max != nil && n > *rule.Max {
			return fmt.Sprintf("field '%s' must be <= %d, got %d", key, *rule.Max, n)
		}
	case "bool":
		if _, err := strconv.ParseBool(c.GetString(key)); err != nil {
			return fmt.Sprintf("field '%s' must be a boolean", key)
		}
	case "duration":
		if _, err := time.ParseDuration(c.GetString(key)); err != nil {
			return fmt.Sprintf("field '%s' must be a duration", key)
		}
	}

	if len(rule.OneOf) > 0 {
		value := c.GetString(key)
		for _, allowed := range rule.OneOf {
			if strings.EqualFold(value, allowed) {
				return ""
			}
		}
		return fmt.Sprintf("field '%s' must be one of [%s], got %q", key, strings.Join(rule.OneOf, ", "), value)
	}
	return ""
}

// rawInt reads key as an integer without falling back to a default
func (c *Config) rawInt(key string) (int, bool) {
	if envValue, ok := c.lookupEnv(key); ok {
		n, err := strconv.Atoi(strings.TrimSpace(envValue))
		return n, err == nil
	}
	return toInt(c.getValue(key))
}
