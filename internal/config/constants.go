package config

import "time"

// Base application details
const AppName = "reef"
const ConfigDirName = "reef"
const DefaultConfigFileName = "config.toml"
const DefaultThemeFileName = "theme.toml"
const DefaultLogFileName = "reef.log"

// UI layout
const StatusBarHeight = 1

// Status bar
const MessageTimeout = 4 * time.Second

// Editor defaults
const DefaultTabWidth = 4
const DefaultSystemClipboard = true

// Browser defaults
const DefaultListScrollOff = 3

// Preview defaults
const DefaultPreviewTextLines = 500
const DefaultPreviewTextWidth = 200
const DefaultPreviewCodeLines = 300
const DefaultPreviewDocPages = 3
const DefaultPreviewImageCols = 80
const DefaultPreviewImageRows = 40
