// Package config defines the YAML-loadable run configuration for
// cmd/subtraj: threading and I/O toggles, the trajectory directory
// prefix, and the pipeline-tuning knobs (hash grid resolution and
// tolerance, ladder level count, search base and exponent step, batch
// size). Values are loaded with gopkg.in/yaml.v3 and checked with
// github.com/go-playground/validator/v10.
package config
