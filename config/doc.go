// Package config defines printing profiles: the fixed style settings
// (indent style and size, end-of-line, tab width) a printer session is
// constructed with. Profiles can be built in code or loaded from TOML or
// YAML files.
package config
