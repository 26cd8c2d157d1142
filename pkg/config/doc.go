// Package config loads gameshift's configuration.
//
// Layers, lowest priority first:
//
//  1. embedded/defaults.toml
//  2. $XDG_CONFIG_HOME/gameshift/config.toml (or --config)
//  3. GAMESHIFT_* environment variables
//  4. command-line overrides
//
// Keys:
//
//	destinations          base directories offered by the interactive menu
//	catalog.path          launcher database; empty means the platform default
//	catalog.backup_suffix appended to catalog.path for the pre-write backup
//	catalog.table         table holding install records
//	catalog.id_column     product identifier column
//	catalog.title_column  display title column
//	catalog.path_column   install directory column
//	layout.aux_dir_name   sibling folder holding installer data
package config
