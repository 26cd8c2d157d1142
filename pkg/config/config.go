package config

// Config is the effective gameshift configuration
type Config struct {
	Catalog      CatalogConfig `koanf:"catalog" toml:"catalog"`
	Layout       LayoutConfig  `koanf:"layout" toml:"layout"`
	Destinations []string      `koanf:"destinations" toml:"destinations"`
}

// CatalogConfig locates the launcher database and names its columns
type CatalogConfig struct {
	Path         string `koanf:"path" toml:"path"`
	BackupSuffix string `koanf:"backup_suffix" toml:"backup_suffix"`
	Table        string `koanf:"table" toml:"table"`
	IDColumn     string `koanf:"id_column" toml:"id_column"`
	TitleColumn  string `koanf:"title_column" toml:"title_column"`
	PathColumn   string `koanf:"path_column" toml:"path_column"`
}

// LayoutConfig describes how the launcher lays out a library on disk
type LayoutConfig struct {
	AuxDirName string `koanf:"aux_dir_name" toml:"aux_dir_name"`
}
