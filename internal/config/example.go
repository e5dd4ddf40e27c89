package config

// Example is a starter actions file written by "fui-demo run --init".
const Example = `# fui actions file
version: 1
title: File tools
actions:
  - description: Create archive
    fields:
      - type: autocomplete
        label: output
        help: Archive to create
        submit_anything: true
        feeder: {kind: glob, only: files}
        validators: [required, path_free]
      - type: autocomplete
        label: compression
        help: Compression
        initial: gzip
        feeder: {kind: list, items: [gzip, bzip2, xz, none]}
        validators:
          - one_of: [gzip, bzip2, xz, none]
      - type: multiselect
        label: files
        help: Files to add
        feeder: {kind: glob}
        validators: [required]
      - type: checkbox
        label: verbose
        help: List processed files
  - description: Find file
    fields:
      - type: autocomplete
        label: file
        help: File under the current directory
        feeder: {kind: walk, dir: ., only: files, no_hidden: true}
        validators: [required, file_exists]
  - description: Make directory
    fields:
      - type: text
        label: name
        help: Directory name
        validators:
          - required
          - regex: '^[A-Za-z0-9._-]+$'
          - path_free
`
