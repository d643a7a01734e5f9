/*
Package config provides type-safe configuration extraction from map[string]any.

# Overview

config wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches by returning default values. It carries the
file-level settings of a replacing setup: the substitution policy and tables
of constant tags.

# Basic Usage

	cfg, err := config.FromFile("replacing.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	policy := replacing.PolicyFromConfig(cfg.Sub("policy"))
	constants, err := replacing.StaticReplacementsFromConfig[Invoice](cfg, "tags")

with a file such as:

	policy:
	  replace_if_null: false
	  catch_errors: true
	tags:
	  "{company}": Acme Ltd
	  "{year}": 2024

# Policy

Policy reads replace_if_null, replace_if_blank and catch_errors. Each
defaults to true when the key is missing or is not a boolean.

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
