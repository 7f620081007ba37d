package config

import "time"

// Base application details
const AppName = "worldedit"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "worldedit.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editor defaults
const DefaultHistoryDepth = 500
const DefaultPlacementMode = "arbitrary"
const DefaultGridScale = 1.0
const SystemClipboard = true
