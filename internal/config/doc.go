// Package config loads fui applications described in YAML.
//
// An actions file lists actions, each with a form made of typed fields, their
// candidate sources and validators:
//
//	version: 1
//	title: Archive tools
//	actions:
//	  - description: Create archive
//	    fields:
//	      - type: autocomplete
//	        label: output
//	        help: Archive to create
//	        submit_anything: true
//	        feeder: {kind: glob, only: files}
//	        validators: [required, path_free]
//	      - type: checkbox
//	        label: verbose
//	        initial: true
//	      - type: multiselect
//	        label: files
//	        feeder: {kind: walk, dir: ., only: files}
//	        validators: [required]
//	      - type: text
//	        label: level
//	        validators:
//	          - regex: '^[0-9]$'
//
// # Configuration File Location
//
// Without an explicit path the actions file is read from:
//   - Linux: $XDG_CONFIG_HOME/fui/actions.yaml or $HOME/.config/fui/actions.yaml
//   - macOS: $HOME/.config/fui/actions.yaml
//   - Windows: %LOCALAPPDATA%\fui\actions.yaml
package config
